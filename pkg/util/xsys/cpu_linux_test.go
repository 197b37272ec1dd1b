//go:build linux

package xsys

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

// 不可 t.Parallel()：替换包级变量 schedGetaffinity。
func TestHardwareConcurrency_AffinityMask(t *testing.T) {
	orig := schedGetaffinity
	t.Cleanup(func() { schedGetaffinity = orig })

	schedGetaffinity = func(_ int, set *unix.CPUSet) error {
		set.Zero()
		set.Set(0)
		set.Set(3)
		set.Set(5)
		return nil
	}
	assert.Equal(t, 3, HardwareConcurrency())
}

// 不可 t.Parallel()：替换包级变量。
func TestHardwareConcurrency_AffinityError(t *testing.T) {
	origAff, origNum := schedGetaffinity, numCPU
	t.Cleanup(func() {
		schedGetaffinity = origAff
		numCPU = origNum
	})

	schedGetaffinity = func(int, *unix.CPUSet) error { return syscall.EPERM }
	numCPU = func() int { return 8 }
	assert.Equal(t, 8, HardwareConcurrency())

	numCPU = func() int { return 0 }
	assert.Equal(t, 1, HardwareConcurrency())
}
