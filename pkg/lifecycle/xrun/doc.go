// Package xrun 提供基于 errgroup + context 的进程生命周期管理。
//
// 任一服务返回错误、调用方 Cancel 或进程收到终止信号时，共享的 context
// 被取消，其余服务应监听 ctx.Done() 并退出。Wait 返回第一个有意义的退出原因：
// 服务错误、Cancel 的 cause 或 *SignalError。
//
//	err := xrun.Run(ctx, func(ctx context.Context) error {
//		return compute(ctx)
//	})
//	if errors.Is(err, xrun.ErrSignal) {
//		// 被信号中断
//	}
//
// 信号只取消 context，不会强行终止服务；需要排空的资源（如 xpool.Pool）
// 应在服务内部自行关闭。
package xrun
