//go:build unix

package xsys

import (
	"fmt"

	"golang.org/x/sys/unix"
)

var getrlimit = unix.Getrlimit

// GetFileLimit 查询当前进程的最大打开文件数（RLIMIT_NOFILE）。
// 返回 soft limit 和 hard limit。
func GetFileLimit() (soft, hard uint64, err error) {
	var rlimit unix.Rlimit
	if err := getrlimit(unix.RLIMIT_NOFILE, &rlimit); err != nil {
		return 0, 0, fmt.Errorf("xsys: getrlimit RLIMIT_NOFILE: %w", err)
	}
	return rlimit.Cur, rlimit.Max, nil
}
