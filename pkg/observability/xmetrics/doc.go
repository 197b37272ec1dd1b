// Package xmetrics 提供统一的可观测性接口（metrics + tracing）。
//
// xmetrics 仅定义最小化接口：Observer/Span/Attr，业务代码只依赖接口；
// 默认实现基于 OpenTelemetry。xpool 为每个执行的任务开启一个跨度。
//
//	obs, _ := xmetrics.NewOTelObserver(xmetrics.WithMeterProvider(mp))
//	pool, _ := xpool.New(0, xpool.WithObserver(obs))
//
// # 指标命名
//
//   - xtpool.operation.total：按 component / operation / status 计数
//   - xtpool.operation.duration：操作耗时（秒）
package xmetrics
