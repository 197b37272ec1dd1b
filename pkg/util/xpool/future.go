package xpool

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync/atomic"
)

const (
	futurePending int32 = iota
	futureReady
)

// Future 是单写多读的结果句柄。
//
// 由执行对应任务的 worker 写入恰好一次，之后可被任意次数、任意 goroutine 读取。
// 就绪前读取会阻塞。任务失败（返回错误或 panic）时读取返回该错误。
type Future[T any] struct {
	done  chan struct{}
	state atomic.Int32
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// complete 写入结果。第二次写入违反契约，直接 panic。
func (f *Future[T]) complete(value T, err error) {
	if !f.state.CompareAndSwap(futurePending, futureReady) {
		panic(errFutureCompleted)
	}
	if err != nil {
		var zero T
		value = zero
	}
	f.value = value
	f.err = err
	close(f.done)
}

// Get 阻塞直到结果就绪，返回任务的值或失败。
func (f *Future[T]) Get() (T, error) {
	<-f.done
	return f.value, f.err
}

// Wait 与 Get 相同，但 ctx 结束时放弃等待并返回 ctx.Err()。
// 放弃等待不会取消任务，任务仍会执行并写入结果。
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	var zero T
	if ctx == nil {
		return zero, ErrNilContext
	}
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Done 返回一个 channel，在结果就绪时关闭。
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Ready 报告结果是否已就绪，不阻塞。
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// PanicError 是任务 panic 后写入 Future 的错误。
type PanicError struct {
	// Value 是 recover() 得到的原始值。
	Value any
	// Stack 是 panic 发生时的 goroutine 堆栈。
	Stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

// Error 实现 error 接口。
func (e *PanicError) Error() string {
	return fmt.Sprintf("xpool: task panic: %v", e.Value)
}

// Unwrap 当 panic 值本身是 error 时返回它，便于 errors.Is/As 判断。
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
