package xpool

import "errors"

var (
	// ErrPoolStopped 表示 pool 已开始关闭，无法再提交任务。
	ErrPoolStopped = errors.New("xpool: pool is stopped")

	// ErrInvalidWorkers 表示 worker 数量无效（不能为负数）。
	ErrInvalidWorkers = errors.New("xpool: invalid worker count")

	// ErrNilFunc 表示提交的函数为 nil。
	ErrNilFunc = errors.New("xpool: func cannot be nil")

	// ErrNilPool 表示传入的 pool 为 nil。
	ErrNilPool = errors.New("xpool: nil pool")

	// ErrNilContext 表示 context 参数为 nil。
	ErrNilContext = errors.New("xpool: nil context")

	// ErrWorkerStart 表示 worker 启动失败，New 会在返回前回收已启动的 worker。
	ErrWorkerStart = errors.New("xpool: worker start failed")
)

// 以下错误表示调用方违反了使用契约，通过 panic 暴露。
var (
	errTaskSpent       = errors.New("xpool: task is empty or already run")
	errFutureCompleted = errors.New("xpool: future completed twice")
)
