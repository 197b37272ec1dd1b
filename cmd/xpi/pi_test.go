package main

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xtpool/pkg/util/xpool"
)

func sequentialPi(terms int) float64 {
	var sum float64
	for k := range terms {
		sum += term(k)
	}
	return sum
}

func TestTerm(t *testing.T) {
	assert.InDelta(t, 4.0, term(0), 0)
	assert.InDelta(t, -4.0/3, term(1), 0)
	assert.InDelta(t, 4.0/5, term(2), 0)
	assert.InDelta(t, -4.0/7, term(3), 0)
}

func computeWith(t *testing.T, workers, hardware, terms int) float64 {
	t.Helper()
	pool, err := xpool.New(workers, xpool.WithHardwareConcurrency(hardware))
	require.NoError(t, err)
	defer func() { require.NoError(t, pool.Close()) }()

	pi, err := computePi(context.Background(), pool, terms)
	require.NoError(t, err)
	return pi
}

func TestComputePi_SameResultAnyWorkerCount(t *testing.T) {
	terms := 1_000_000
	if testing.Short() {
		terms = 10_000
	}

	single := computeWith(t, 1, 8, terms)
	parallel := computeWith(t, 0, 8, terms)

	assert.Equal(t, single, parallel)
	assert.Equal(t, sequentialPi(terms), parallel)
	assert.InDelta(t, math.Pi, parallel, 4.0/float64(terms))
}

func TestComputePi_Empty(t *testing.T) {
	assert.Zero(t, computeWith(t, 2, 2, 0))
}

func TestComputePi_ContextCanceled(t *testing.T) {
	pool, err := xpool.New(1)
	require.NoError(t, err)

	block := make(chan struct{})
	require.NoError(t, pool.Post(func() { <-block }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = computePi(ctx, pool, 100)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(block)
	require.NoError(t, pool.Close())
}

func TestComputePi_StoppedPool(t *testing.T) {
	pool, err := xpool.New(1)
	require.NoError(t, err)
	require.NoError(t, pool.Close())

	_, err = computePi(context.Background(), pool, 10)
	assert.ErrorIs(t, err, xpool.ErrPoolStopped)
}
