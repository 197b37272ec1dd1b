package xpool

import (
	"context"

	"github.com/omeyang/xtpool/pkg/observability/xlog"
	"github.com/omeyang/xtpool/pkg/observability/xmetrics"
	"github.com/omeyang/xtpool/pkg/util/xsys"
)

// Option 定义 Pool 可选配置函数类型。
type Option func(*options)

// WorkerInitFunc 在 worker 进入主循环前执行。
// 返回错误会中止 New，已启动的 worker 全部回收后错误返回给调用方。
type WorkerInitFunc func(ctx context.Context, workerID int) error

type options struct {
	logger         xlog.Logger
	observer       xmetrics.Observer
	name           string
	hardware       int
	lockOSThread   bool
	workerInit     WorkerInitFunc
	logPanicStacks bool
}

func defaultOptions() options {
	return options{
		logger:         xlog.Default(),
		observer:       xmetrics.NoopObserver{},
		logPanicStacks: true,
	}
}

// WithLogger 设置自定义日志记录器。
// 默认使用 xlog.Default()。传入 nil 将被忽略，保持使用默认值。
func WithLogger(logger xlog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver 设置任务执行的观测器，每个任务执行对应一个跨度。
// 默认为 xmetrics.NoopObserver。传入 nil 将被忽略。
func WithObserver(observer xmetrics.Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

// WithName 设置 pool 名称，用于在多实例场景下区分日志来源。
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithHardwareConcurrency 覆盖硬件并发数提示（默认 xsys.HardwareConcurrency()）。
// n <= 0 时忽略。
func WithHardwareConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.hardware = n
		}
	}
}

// WithLockOSThread 让每个 worker 独占一个 OS 线程（runtime.LockOSThread）。
func WithLockOSThread() Option {
	return func(o *options) {
		o.lockOSThread = true
	}
}

// WithWorkerInit 设置 worker 启动钩子，在该 worker 的 goroutine 中执行。
func WithWorkerInit(fn WorkerInitFunc) Option {
	return func(o *options) {
		o.workerInit = fn
	}
}

// WithLogPanicStack 控制 Post 任务 panic 时是否在日志中输出堆栈，默认输出。
func WithLogPanicStack(enable bool) Option {
	return func(o *options) {
		o.logPanicStacks = enable
	}
}

func (o *options) hardwareConcurrency() int {
	if o.hardware > 0 {
		return o.hardware
	}
	return xsys.HardwareConcurrency()
}
