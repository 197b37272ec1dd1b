package xpool

// noCopy 让 go vet 的 copylocks 检查拒绝 task 的值拷贝。
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// task 是一次性执行单元：包装一个无参闭包。
//
// task 只以指针形式流转，所有权从 Submit 转移到队列，再由 pop 转移给 worker。
// 返回值和错误的捕获由提交层写入闭包内部，task 本身不关心结果。
type task struct {
	_  noCopy
	fn func()
}

func newTask(fn func()) *task {
	return &task{fn: fn}
}

// run 执行闭包并清空，保证最多执行一次。
// 空 task 或已执行的 task 再次 run 属于编程错误，直接 panic。
func (t *task) run() {
	fn := t.fn
	if fn == nil {
		panic(errTaskSpent)
	}
	t.fn = nil
	fn()
}
