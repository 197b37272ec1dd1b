package xpool

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
)

// runWorker 是 worker goroutine 的入口。
//
// 启动结果通过 ready 回报给 New：初始化失败时直接退出，不进入主循环。
// defer 顺序保证 live 计数先于 done 关闭递减，join 返回后 LiveWorkers 必为 0。
func (p *Pool) runWorker(w *workerThread, ready chan<- error) {
	defer close(w.done)

	// 启动钩子内 runtime.Goexit 会跳过正常返回路径，New 仍需收到结果
	reported := false
	defer func() {
		if !reported {
			ready <- fmt.Errorf("worker %d init exited without returning", w.id)
		}
	}()

	if p.opts.lockOSThread {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
	}

	if err := p.initWorker(w.id); err != nil {
		reported = true
		ready <- err
		return
	}

	p.live.Add(1)
	defer p.live.Add(-1)
	reported = true
	ready <- nil

	p.loop()
}

// loop 是 worker 主循环：等待 -> 取出 -> 执行。
//
// 只有在关闭标志已设置且队列为空时 pop 才返回 false，这是唯一的退出路径；
// 关闭后残留的任务仍会被逐个取出执行。执行期间不持有队列锁。
func (p *Pool) loop() {
	for {
		t, ok := p.queue.pop()
		if !ok {
			return
		}
		t.run()
	}
}

func (p *Pool) initWorker(id int) (err error) {
	fn := p.opts.workerInit
	if fn == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker %d init panic: %v", id, r)
		}
	}()
	return fn(context.Background(), id)
}

// protect 执行 fn 并吞掉其中的 panic，返回恢复到的值。
// 用于调用方注入的观测器与日志记录器，避免其 panic 杀死 worker。
func protect(fn func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	fn()
	return nil
}

// logObserverPanic 记录观测器的 panic。日志记录器自身 panic 时静默丢弃。
func (p *Pool) logObserverPanic(r any) {
	protect(func() {
		p.opts.logger.Error(context.Background(), "xpool: observer panic recovered",
			slog.String("pool", p.opts.name),
			slog.String("panic", fmt.Sprint(r)),
		)
	})
}

// logPanic 记录 Post 任务的 panic；Submit 任务的 panic 交给 Future 返回。
func (p *Pool) logPanic(pe *PanicError) {
	ctx := context.Background()
	attrs := []slog.Attr{
		slog.String("pool", p.opts.name),
		slog.String("panic", fmt.Sprint(pe.Value)),
	}
	if p.opts.logPanicStacks {
		attrs = append(attrs, slog.String("stack", string(pe.Stack)))
	}
	p.opts.logger.Error(ctx, "xpool: task panic recovered", attrs...)
}
