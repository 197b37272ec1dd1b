// Package xpool 提供固定大小的 worker pool，任务结果通过 Future 返回。
//
// Pool 在创建时启动固定数量的 worker，生命周期内不扩缩容。
// 支持以下特性：
//   - 任意返回类型：Submit / SubmitValue 通过泛型推导结果类型
//   - 参数绑定：Bind1/Bind2/BindE1/BindE2 把"函数 + 参数"变为无参闭包
//   - 无界 FIFO 队列：Submit 永不因容量阻塞
//   - 失败隔离：任务返回的错误或 panic 写入 Future，不影响 worker
//   - 排空式关闭：Close 等待所有已入队任务执行完成后才返回
//   - 超时等待：Shutdown(ctx) 到期后返回，剩余任务仍在后台执行完毕
//   - 启动失败回收：worker 启动钩子失败时，已启动的 worker 全部回收后再返回错误
//   - 可注入日志（WithLogger）与观测器（WithObserver）
//
// # worker 数量
//
// New(0) 或 New(n)（n 超过硬件并发数）使用硬件并发数，
// 硬件并发数默认取 xsys.HardwareConcurrency()，可通过 WithHardwareConcurrency 覆盖。
//
// # 注意事项
//
//   - Close/Shutdown 不可在任务内部调用，否则会死锁
//   - 关闭开始后 Submit/Post 返回 ErrPoolStopped
//   - 已提交的任务不可撤销，也不会被中断
//   - 丢弃未读取的 Future 会静默丢弃其中的错误
//   - 出队顺序为提交顺序；多个 worker 并行执行，完成顺序不保证
//
// # 设计选择说明
//
// 设计决策: 队列使用 mutex + sync.Cond 而非 channel：
//   - 队列必须无界，带缓冲 channel 的容量是固定的
//   - 关闭标志与队列共用一把锁，worker 在锁内检查 "关闭或非空"，
//     关闭后仍会先取完剩余任务，不存在丢任务的窗口
//
// Go 没有析构函数，Close 即 pool 的拆除入口；New 返回 *Pool 而非接口，
// 编译期通过 io.Closer 断言确保关闭契约。
package xpool
