// Package xsys 提供进程可用系统资源的查询工具。
//
// # 功能概览
//
//   - [HardwareConcurrency]: 当前进程可用的 CPU 数（Linux 读取调度亲和性掩码，其他平台回退 runtime.NumCPU）
//   - [GetFileLimit]: 查询进程当前最大打开文件数（Unix 平台生效，非 Unix 返回 [ErrUnsupportedPlatform]）
//
// # 平台支持
//
// HardwareConcurrency 在 Linux 上通过 sched_getaffinity 计算，
// 因此会反映 taskset/cgroup cpuset 对进程的限制；调用失败时回退 runtime.NumCPU。
// 返回值始终 >= 1。
package xsys
