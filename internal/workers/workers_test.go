// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWorker tracks how many times Run was called and blocks until
// the context is cancelled.
type countingWorker struct {
	runCount atomic.Int32
}

func (m *countingWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2)
	ws.Add(w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, 3, ws.Len())
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_FailureStopsOthers(t *testing.T) {
	errBoom := errors.New("boom")
	blocking := &countingWorker{}

	ws := NewWorkers(blocking, WorkerFunc(func(context.Context) error {
		return errBoom
	}))

	err := ws.Run(context.Background())

	assert.ErrorIs(t, err, errBoom)
}

func TestWorkers_Run_PanicBecomesError(t *testing.T) {
	blocking := &countingWorker{}

	ws := NewWorkers(blocking, WorkerFunc(func(context.Context) error {
		panic("health check exploded")
	}))

	err := ws.Run(context.Background())

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "health check exploded", pe.Value)
	assert.NotEmpty(t, pe.Stack)
	assert.Equal(t, "panic: health check exploded", err.Error())
}

func TestRecover_PassesThroughResult(t *testing.T) {
	errBoom := errors.New("boom")

	assert.NoError(t, Recover(func() error { return nil })())
	assert.ErrorIs(t, Recover(func() error { return errBoom })(), errBoom)
}
