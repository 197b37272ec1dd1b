//go:build linux

package xsys

import "golang.org/x/sys/unix"

// schedGetaffinity 系统调用函数变量，支持测试中 mock 替换以覆盖错误路径。
// 注意：mock 测试不可使用 t.Parallel()，因为替换包级变量会引发竞态。
var schedGetaffinity = unix.SchedGetaffinity

// affinityCPUs 返回调度亲和性掩码中的 CPU 数量。
func affinityCPUs() (int, bool) {
	var set unix.CPUSet
	if err := schedGetaffinity(0, &set); err != nil {
		return 0, false
	}
	return set.Count(), true
}
