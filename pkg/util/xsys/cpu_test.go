package xsys

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHardwareConcurrency(t *testing.T) {
	n := HardwareConcurrency()
	assert.GreaterOrEqual(t, n, 1)
	assert.LessOrEqual(t, n, runtime.NumCPU())
}

// 不可 t.Parallel()：替换包级变量 numCPU。
func TestHardwareConcurrency_NumCPUFloor(t *testing.T) {
	orig := numCPU
	t.Cleanup(func() { numCPU = orig })

	numCPU = func() int { return 0 }
	if _, ok := affinityCPUs(); ok {
		t.Skip("affinity mask available, NumCPU fallback not reached")
	}
	assert.Equal(t, 1, HardwareConcurrency())
}
