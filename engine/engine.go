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

// Package engine implements the query execution engine (spec §4.B, §5): the per-node batching
// algorithm that walks a merged query against a graph, dispatching resolver calls through a
// concurrent.Executor and writing their results into a result.Index.
package engine

import (
	"context"
	"time"

	"github.com/hikulang/hiku/concurrent"
	"github.com/hikulang/hiku/graph"
	"github.com/hikulang/hiku/query"
	"github.com/hikulang/hiku/result"
)

// Result is what Execute returns: the finalized index, a Proxy over its root, and the query the
// index was built to satisfy (after merging), for callers that want to run Denormalize themselves.
type Result struct {
	Index *result.Index
	Root  *result.Proxy
	Query *query.Node
}

// Engine runs queries against a Graph. It holds no per-execution state; a single Engine may run
// many Execute calls concurrently, each building its own Index.
type Engine struct {
	executor concurrent.Executor
	timeout  time.Duration
}

// New constructs an Engine that dispatches resolver calls through executor. A zero timeout (the
// default) means AwaitResult blocks without a deadline; use WithTimeout to bound how long a level
// may wait on straggling resolvers.
func New(executor concurrent.Executor) *Engine {
	return &Engine{executor: executor}
}

// WithTimeout returns a copy of e that bounds every per-level Await call to d.
func (e *Engine) WithTimeout(d time.Duration) *Engine {
	clone := *e
	clone.timeout = d
	return &clone
}

// Execute runs query against graph, returning a Result carrying the finalized index. execContext,
// if non-nil, is made available to resolvers via FromContext.
func (e *Engine) Execute(ctx context.Context, g *graph.Graph, q *query.Node, execContext map[string]interface{}) (*Result, error) {
	merged, err := query.Merge([]*query.Node{q})
	if err != nil {
		return nil, err
	}

	ctx = withExecutionContext(ctx, execContext)

	idx := result.NewIndex()
	run := &execution{engine: e, index: idx, graph: g}
	if err := run.processNode(ctx, g.Root(), merged, nil); err != nil {
		return nil, err
	}
	idx.Finalize()

	return &Result{
		Index: idx,
		Root:  result.NewProxy(idx.RootRef(), merged),
		Query: merged,
	}, nil
}

// Denormalize is a convenience wrapper around result.Denormalize using r's own query and graph.
func (r *Result) Denormalize(g *graph.Graph) (map[string]interface{}, error) {
	return result.Denormalize(g, r.Index, r.Query)
}
