package payout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:       "simple tasks",
			numTasks:   5,
			numWorkers: 2,
		},
		{
			name:           "task returns error",
			numTasks:       2,
			numWorkers:     2,
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)
			defer wp.Close()

			var mu sync.Mutex
			var executed, failed int
			var wg sync.WaitGroup

			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				i := i
				err := wp.AddTask(context.Background(), func() error {
					defer wg.Done()
					mu.Lock()
					defer mu.Unlock()
					if i == tt.numTasks-1 && tt.expectedErrors > 0 {
						failed++
						return assert.AnError
					}
					executed++
					return nil
				})
				require.NoError(t, err)
			}

			wg.Wait()

			assert.Equal(t, tt.numTasks-tt.expectedErrors, executed)
			assert.Equal(t, tt.expectedErrors, failed)
		})
	}
}

func TestWorkerPool_AddTaskCanceled(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	block := make(chan struct{})
	defer close(block)
	require.NoError(t, wp.AddTask(context.Background(), func() error {
		<-block
		return nil
	}))
	// fill the buffer so the next send blocks
	require.NoError(t, wp.AddTask(context.Background(), func() error { return nil }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	wp := NewWorkerPool(1)
	wp.Close()
	assert.NotPanics(t, wp.Close)
}
