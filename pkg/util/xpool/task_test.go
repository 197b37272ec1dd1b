package xpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTask_RunOnce(t *testing.T) {
	var calls int
	tk := newTask(func() { calls++ })

	tk.run()
	assert.Equal(t, 1, calls)
	assert.PanicsWithValue(t, errTaskSpent, tk.run)
	assert.Equal(t, 1, calls)
}

func TestTask_Empty(t *testing.T) {
	assert.PanicsWithValue(t, errTaskSpent, newTask(nil).run)
}
