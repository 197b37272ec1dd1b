package main

import (
	"context"

	"github.com/omeyang/xtpool/pkg/util/xpool"
)

// term 返回 Leibniz 级数第 k 项：(-1)^k * 4/(2k+1)。
func term(k int) float64 {
	v := 4.0 / float64(2*k+1)
	if k%2 == 1 {
		return -v
	}
	return v
}

// computePi 把 terms 项逐项提交到 pool，再按下标顺序累加各项结果。
//
// 累加顺序与 worker 数量无关，因此结果与单线程求和逐位一致。
// ctx 结束时停止等待并返回 ctx.Err()，已提交的项仍由 pool 排空。
func computePi(ctx context.Context, pool *xpool.Pool, terms int) (float64, error) {
	futures := make([]*xpool.Future[float64], terms)
	for k := range terms {
		f, err := xpool.SubmitValue(pool, xpool.Bind1(term, k))
		if err != nil {
			return 0, err
		}
		futures[k] = f
	}

	var sum float64
	for _, f := range futures {
		v, err := f.Wait(ctx)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}
