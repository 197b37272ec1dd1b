package xsys

import "runtime"

// numCPU 可在测试中替换。
var numCPU = runtime.NumCPU

// HardwareConcurrency 返回当前进程可并行使用的 CPU 数，始终 >= 1。
func HardwareConcurrency() int {
	if n, ok := affinityCPUs(); ok && n > 0 {
		return n
	}
	if n := numCPU(); n > 0 {
		return n
	}
	return 1
}
