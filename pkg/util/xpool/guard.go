package xpool

import "sync"

// workerThread 记录一个已启动的 worker；done 在 worker goroutine 完全退出时关闭。
type workerThread struct {
	id     int
	done   chan struct{}
	joined bool
}

func newWorkerThread(id int) *workerThread {
	return &workerThread{id: id, done: make(chan struct{})}
}

// threadGuard 保证所有已启动的 worker 在 pool 拆除前被回收。
//
// guard 只引用 worker 集合，不拥有它：New 在启动中途失败时通过 defer 回收
// 已启动的 worker，正常关闭时由 Close/Shutdown 触发同一个 join。
type threadGuard struct {
	mu      sync.Mutex
	threads *[]*workerThread
}

func newThreadGuard(threads *[]*workerThread) *threadGuard {
	return &threadGuard{threads: threads}
}

// join 按集合顺序等待每个尚未回收的 worker 退出。可重复调用。
func (g *threadGuard) join() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, t := range *g.threads {
		if t.joined {
			continue
		}
		<-t.done
		t.joined = true
	}
}
