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
	"time"

	"golang.org/x/sync/errgroup"
)

// Await implements the single suspension point the engine relies on: an all-complete barrier over
// a batch of TaskHandle's submitted for one query level. It blocks until every handle has produced
// a result (or forever if timeout is zero), returning results in the same order as handles. If one
// or more tasks failed, Await still waits for the rest to settle (best effort) before returning the
// first error encountered, per the propagation policy of resolver errors.
func Await(handles []TaskHandle, timeout time.Duration) ([]interface{}, error) {
	results := make([]interface{}, len(handles))

	var g errgroup.Group
	for i, handle := range handles {
		i, handle := i, handle
		g.Go(func() error {
			result, err := handle.AwaitResult(timeout)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
