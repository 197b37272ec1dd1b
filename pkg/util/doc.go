// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xpool: 固定大小的泛型 worker pool，无界 FIFO 队列、Future 结果句柄、排空式关闭
//   - xsys: 系统信息查询，硬件并发数（CPU 亲和性）与文件描述符上限
package util
