package xpool

import (
	"sync"
	"sync/atomic"
)

// minQueueCap 环形缓冲区的初始容量。
const minQueueCap = 64

// taskQueue 是无界 FIFO 队列，由一把互斥锁和一个条件变量保护。
//
// 关闭标志与队列共用同一把锁：worker 的等待谓词为 "closed || len > 0"，
// 每次唤醒后在锁内重新检查，不依赖唤醒原因。
// stopped 是 closed 的无锁镜像，仅供观测读取，不参与调度。
type taskQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	buf    []*task
	head   int
	size   int
	closed bool

	stopped atomic.Bool
}

func newTaskQueue() *taskQueue {
	q := &taskQueue{buf: make([]*task, minQueueCap)}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push 将 t 追加到队尾并唤醒一个等待的 worker。
// 关闭后返回 ErrPoolStopped，t 不会入队。
func (q *taskQueue) push(t *task) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrPoolStopped
	}
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = t
	q.size++
	q.mu.Unlock()

	q.cond.Signal()
	return nil
}

// pop 阻塞直到队列非空或已关闭。
// 队列非空时总是先取出队首（关闭后也继续排空）；只有关闭且为空时返回 false。
func (q *taskQueue) pop() (*task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for !q.closed && q.size == 0 {
		q.cond.Wait()
	}
	if q.size == 0 {
		return nil, false
	}

	t := q.buf[q.head]
	q.buf[q.head] = nil
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return t, true
}

// close 设置关闭标志并唤醒所有 worker。
// 标志只会从 false 变为 true；返回本次调用是否完成了这一转换。
func (q *taskQueue) close() bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.closed = true
	q.stopped.Store(true)
	q.mu.Unlock()

	q.cond.Broadcast()
	return true
}

// len 返回待执行任务数。
func (q *taskQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// isClosed 无锁读取关闭标志。
func (q *taskQueue) isClosed() bool {
	return q.stopped.Load()
}

// grow 容量翻倍并把元素按 FIFO 顺序搬到新缓冲区头部。调用方须持锁。
func (q *taskQueue) grow() {
	next := make([]*task, len(q.buf)*2)
	n := copy(next, q.buf[q.head:])
	copy(next[n:], q.buf[:q.head])
	q.buf = next
	q.head = 0
}
