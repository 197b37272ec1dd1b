package xpool

// Submit 提交一个返回 (T, error) 的函数，立即返回其 Future，不阻塞。
//
// fn 的返回值、返回的错误或 panic（*PanicError）都会写入 Future，
// 不会影响 worker 或 pool。并发安全。pool 关闭后返回 ErrPoolStopped。
func Submit[T any](p *Pool, fn func() (T, error)) (*Future[T], error) {
	if p == nil {
		return nil, ErrNilPool
	}
	if fn == nil {
		return nil, ErrNilFunc
	}

	f := newFuture[T]()
	var value T
	body := func() error {
		v, err := fn()
		value = v
		return err
	}
	if err := p.enqueue(p.instrument(body, func(err error) {
		f.complete(value, err)
	})); err != nil {
		return nil, err
	}
	return f, nil
}

// SubmitValue 提交一个不会返回错误的函数。panic 仍会以 *PanicError 写入 Future。
func SubmitValue[T any](p *Pool, fn func() T) (*Future[T], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	return Submit(p, func() (T, error) {
		return fn(), nil
	})
}

// Bind1 把参数绑定到函数上，得到可交给 SubmitValue 的无参闭包。
// 参数在绑定时求值（按值捕获）。
func Bind1[A, T any](fn func(A) T, a A) func() T {
	return func() T {
		return fn(a)
	}
}

// Bind2 是两个参数版本的 Bind1。
func Bind2[A, B, T any](fn func(A, B) T, a A, b B) func() T {
	return func() T {
		return fn(a, b)
	}
}

// BindE1 把参数绑定到返回 error 的函数上，得到可交给 Submit 的无参闭包。
func BindE1[A, T any](fn func(A) (T, error), a A) func() (T, error) {
	return func() (T, error) {
		return fn(a)
	}
}

// BindE2 是两个参数版本的 BindE1。
func BindE2[A, B, T any](fn func(A, B) (T, error), a A, b B) func() (T, error) {
	return func() (T, error) {
		return fn(a, b)
	}
}
