/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package concurrent

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// WorkerPoolExecutorConfig contains options to configure a WorkerPoolExecutor.
type WorkerPoolExecutorConfig struct {
	// The number of worker goroutines kept running to execute submitted tasks (required, must be
	// greater than 0).
	PoolSize uint32

	// QueueSize bounds the number of tasks that may be queued ahead of the pool before Submit blocks.
	// Zero selects a queue of four times PoolSize; the queue is always bounded.
	QueueSize uint32
}

// Validate verifies config values.
func (config *WorkerPoolExecutorConfig) Validate() error {
	if config.PoolSize == 0 {
		return errors.New(`WorkerPoolExecutor: PoolSize must be a non-zero value which specifies ` +
			`the number of workers to be created by the executor. If you have no idea, try to set ` +
			`the value to uint32(runtime.GOMAXPROCS(-1)).`)
	}
	return nil
}

// workerPoolTask pairs a submitted Task with the channel used to deliver its result to the
// corresponding TaskHandle.
type workerPoolTask struct {
	task Task
	done chan taskResult
}

type taskResult struct {
	value interface{}
	err   error
}

// workerPoolTaskHandle is the TaskHandle returned by WorkerPoolExecutor.Submit.
type workerPoolTaskHandle struct {
	done chan taskResult

	once   sync.Once
	result taskResult
}

// Cancel implements TaskHandle. WorkerPoolExecutor does not support cancelling a task once
// submitted; per spec, cancellation is not supported and not needed by the engine.
func (*workerPoolTaskHandle) Cancel() error {
	return errors.New("concurrent: WorkerPoolExecutor does not support task cancellation")
}

// AwaitResult implements TaskHandle. A zero or negative timeout waits forever.
func (h *workerPoolTaskHandle) AwaitResult(timeout time.Duration) (interface{}, error) {
	if timeout <= 0 {
		h.once.Do(func() { h.result = <-h.done })
		return h.result.value, h.result.err
	}

	var timedOut bool
	h.once.Do(func() {
		select {
		case h.result = <-h.done:
		case <-time.After(timeout):
			timedOut = true
		}
	})
	if timedOut {
		return nil, ErrkAwaitTaskResultTimeout
	}
	return h.result.value, h.result.err
}

// WorkerPoolExecutor dispatches Task's to a fixed-size pool of worker goroutines reading off a
// shared queue. It is the concurrent counterpart to InlineExecutor: Submit returns immediately and
// the engine's per-level barrier (Await) is what actually blocks waiting for workers to drain the
// queue.
type WorkerPoolExecutor struct {
	queue chan workerPoolTask

	shutdownOnce sync.Once
	closed       chan struct{}
	drained      chan bool
	wg           sync.WaitGroup
}

var _ Executor = (*WorkerPoolExecutor)(nil)

// NewWorkerPoolExecutor creates a WorkerPoolExecutor per config and starts its workers.
func NewWorkerPoolExecutor(config WorkerPoolExecutorConfig) (*WorkerPoolExecutor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	queueSize := int(config.QueueSize)
	if queueSize == 0 {
		queueSize = int(config.PoolSize) * 4
	}

	e := &WorkerPoolExecutor{
		queue:   make(chan workerPoolTask, queueSize),
		closed:  make(chan struct{}),
		drained: make(chan bool, 1),
	}

	for i := uint32(0); i < config.PoolSize; i++ {
		e.wg.Add(1)
		go e.worker()
	}

	return e, nil
}

func (e *WorkerPoolExecutor) worker() {
	defer e.wg.Done()
	for job := range e.queue {
		value, err := job.task.Run()
		job.done <- taskResult{value: value, err: err}
	}
}

// Submit implements Executor.
func (e *WorkerPoolExecutor) Submit(task Task) (TaskHandle, error) {
	select {
	case <-e.closed:
		return nil, fmt.Errorf("concurrent: WorkerPoolExecutor has been shut down")
	default:
	}

	done := make(chan taskResult, 1)
	select {
	case e.queue <- workerPoolTask{task: task, done: done}:
	case <-e.closed:
		return nil, fmt.Errorf("concurrent: WorkerPoolExecutor has been shut down")
	}

	return &workerPoolTaskHandle{done: done}, nil
}

// Shutdown implements Executor.
func (e *WorkerPoolExecutor) Shutdown() (<-chan bool, error) {
	e.shutdownOnce.Do(func() {
		close(e.closed)
		close(e.queue)
		go func() {
			e.wg.Wait()
			e.drained <- true
		}()
	})
	return e.drained, nil
}
