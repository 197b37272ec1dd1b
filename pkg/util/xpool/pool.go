package xpool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/omeyang/xtpool/pkg/observability/xmetrics"
)

// 编译期确保 Pool 满足关闭契约。
var _ io.Closer = (*Pool)(nil)

// Pool 是固定大小的 worker pool。
//
// worker 数量在 New 时确定，生命周期内不变。任务进入无界 FIFO 队列，
// 由空闲 worker 按提交顺序取出执行；结果通过 Future 返回给调用方。
type Pool struct {
	opts      options
	workers   int
	queue     *taskQueue
	threads   []*workerThread
	guard     *threadGuard
	spanAttrs []xmetrics.Attr

	live      atomic.Int32
	running   atomic.Int64
	submitted atomic.Uint64
	completed atomic.Uint64
	failed    atomic.Uint64
	panicked  atomic.Uint64

	closeOnce sync.Once
	done      chan struct{}
}

// Stats 是 Pool 的运行时快照。
type Stats struct {
	Workers     int
	LiveWorkers int
	Pending     int
	Running     int
	Submitted   uint64
	Completed   uint64
	Failed      uint64
	Panicked    uint64
	Stopped     bool
}

// New 创建并启动 pool。
//
// maxWorkers 为 0 或超过硬件并发数时使用硬件并发数，否则使用 maxWorkers；
// 负数返回 ErrInvalidWorkers。
//
// worker 逐个启动，每个 worker 在进入主循环前回报启动结果。第 k 个 worker
// 启动失败时：设置关闭标志、唤醒等待者、回收 0..k-1 号 worker，
// 然后返回包装了 ErrWorkerStart 的错误，不会遗留任何 goroutine。
func New(maxWorkers int, opts ...Option) (*Pool, error) {
	if maxWorkers < 0 {
		return nil, ErrInvalidWorkers
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	n := resolveWorkers(maxWorkers, o.hardwareConcurrency())
	p := &Pool{
		opts:    o,
		workers: n,
		queue:   newTaskQueue(),
		threads: make([]*workerThread, 0, n),
		done:    make(chan struct{}),
	}
	p.guard = newThreadGuard(&p.threads)
	if o.name != "" {
		p.spanAttrs = []xmetrics.Attr{xmetrics.String("pool", o.name)}
	}

	if err := p.start(); err != nil {
		return nil, err
	}

	p.opts.logger.Debug(context.Background(), "xpool: pool started",
		slog.String("pool", p.opts.name),
		slog.Int("workers", n),
	)
	return p, nil
}

func (p *Pool) start() (err error) {
	defer func() {
		if err != nil {
			p.queue.close()
			p.guard.join()
			close(p.done)
		}
	}()

	ready := make(chan error, 1)
	for i := range p.workers {
		w := newWorkerThread(i)
		p.threads = append(p.threads, w)
		go p.runWorker(w, ready)

		if startErr := <-ready; startErr != nil {
			p.opts.logger.Error(context.Background(), "xpool: worker start failed",
				slog.String("pool", p.opts.name),
				slog.Int("worker", i),
				slog.Any("error", startErr),
			)
			return fmt.Errorf("%w: worker %d: %w", ErrWorkerStart, i, startErr)
		}
	}
	return nil
}

func resolveWorkers(maxWorkers, hardware int) int {
	if hardware < 1 {
		hardware = 1
	}
	if maxWorkers == 0 || maxWorkers > hardware {
		return hardware
	}
	return maxWorkers
}

// Post 提交一个不关心结果的任务。
// 任务 panic 会被恢复并记录日志，不影响 worker。
func (p *Pool) Post(fn func()) error {
	if p == nil {
		return ErrNilPool
	}
	if fn == nil {
		return ErrNilFunc
	}
	body := func() error {
		fn()
		return nil
	}
	return p.enqueue(p.instrument(body, func(err error) {
		var pe *PanicError
		if errors.As(err, &pe) {
			protect(func() { p.logPanic(pe) })
		}
	}))
}

func (p *Pool) enqueue(fn func()) error {
	p.submitted.Add(1)
	if err := p.queue.push(newTask(fn)); err != nil {
		p.submitted.Add(^uint64(0))
		return err
	}
	return nil
}

// instrument 把执行体包装为任务闭包：观测跨度、panic 捕获、计数，
// 最后把结果交给 deliver。用户函数以及注入的观测器的 panic 都在这里截获，
// worker 循环无需感知；观测器 panic 时任务照常执行、结果照常交付。
func (p *Pool) instrument(body func() error, deliver func(error)) func() {
	return func() {
		p.running.Add(1)
		var span xmetrics.Span = xmetrics.NoopSpan{}
		if r := protect(func() {
			_, span = xmetrics.Start(context.Background(), p.opts.observer, xmetrics.SpanOptions{
				Component: "xpool",
				Operation: "task.execute",
				Kind:      xmetrics.KindInternal,
				Attrs:     p.spanAttrs,
			})
		}); r != nil {
			p.logObserverPanic(r)
		}

		err := call(body)

		if r := protect(func() { span.End(xmetrics.Result{Err: err}) }); r != nil {
			p.logObserverPanic(r)
		}
		p.running.Add(-1)
		p.completed.Add(1)
		if err != nil {
			p.failed.Add(1)
			var pe *PanicError
			if errors.As(err, &pe) {
				p.panicked.Add(1)
			}
		}
		deliver(err)
	}
}

// call 执行 body，把 panic 转换为 *PanicError。
func call(body func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()
	return body()
}

// Close 关闭 pool 并等待所有已入队任务执行完毕、所有 worker 退出。
// 等价于 Shutdown(context.Background())。
//
// Close 不可在任务内部调用，否则会死锁。
func (p *Pool) Close() error {
	return p.Shutdown(context.Background())
}

// Shutdown 设置关闭标志、唤醒全部 worker，并等待队列排空、worker 退出。
//
// ctx 只约束等待本身：ctx 到期后立即返回 ctx.Err()，worker 仍在后台继续执行
// 剩余任务直到队列为空，调用方可通过 Done() 等待最终完成。任务不会被丢弃或中断。
// 可重复调用，关闭后再提交返回 ErrPoolStopped。
func (p *Pool) Shutdown(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}

	p.closeOnce.Do(func() {
		p.queue.close()
		go func() {
			p.guard.join()
			p.opts.logger.Debug(context.Background(), "xpool: pool stopped",
				slog.String("pool", p.opts.name),
				slog.Uint64("completed", p.completed.Load()),
			)
			close(p.done)
		}()
	})

	select {
	case <-p.done:
		return nil
	default:
	}
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done 返回一个 channel，在所有 worker 退出后关闭。
func (p *Pool) Done() <-chan struct{} {
	return p.done
}

// Workers 返回 worker 数量。
func (p *Pool) Workers() int {
	return p.workers
}

// Name 返回 pool 名称。
func (p *Pool) Name() string {
	return p.opts.name
}

// Stats 返回运行时统计快照，各字段分别读取，彼此之间不保证原子一致。
func (p *Pool) Stats() Stats {
	return Stats{
		Workers:     p.workers,
		LiveWorkers: int(p.live.Load()),
		Pending:     p.queue.len(),
		Running:     int(p.running.Load()),
		Submitted:   p.submitted.Load(),
		Completed:   p.completed.Load(),
		Failed:      p.failed.Load(),
		Panicked:    p.panicked.Load(),
		Stopped:     p.queue.isClosed(),
	}
}
