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
	"time"
)

// inlineTaskHandle is the TaskHandle returned by InlineExecutor. The task has already run to
// completion by the time Submit returns, so AwaitResult and Cancel are trivial.
type inlineTaskHandle struct {
	result interface{}
	err    error
}

// Cancel implements TaskHandle. Inline tasks have already completed by the time a handle exists,
// so cancellation always fails.
func (*inlineTaskHandle) Cancel() error {
	return errors.New("concurrent: InlineExecutor task already completed, cannot cancel")
}

// AwaitResult implements TaskHandle.
func (h *inlineTaskHandle) AwaitResult(time.Duration) (interface{}, error) {
	return h.result, h.err
}

// InlineExecutor runs every submitted Task synchronously on the caller's goroutine, inside
// Submit. It is the simplest Executor: useful for tests, for single-threaded resolvers, or for
// callers who want deterministic, sequential execution order instead of concurrent dispatch.
type InlineExecutor struct {
	shutdown bool
}

var _ Executor = (*InlineExecutor)(nil)

// NewInlineExecutor creates an InlineExecutor.
func NewInlineExecutor() *InlineExecutor {
	return &InlineExecutor{}
}

// Submit implements Executor. It runs task to completion before returning.
func (e *InlineExecutor) Submit(task Task) (TaskHandle, error) {
	if e.shutdown {
		return nil, errors.New("concurrent: InlineExecutor has been shut down")
	}
	result, err := task.Run()
	return &inlineTaskHandle{result: result, err: err}, nil
}

// Shutdown implements Executor.
func (e *InlineExecutor) Shutdown() (<-chan bool, error) {
	terminated := make(chan bool, 1)
	terminated <- true
	e.shutdown = true
	return terminated, nil
}
