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

// Package hiku ties together query, graph, engine, result, edn, and readers/simple into the single
// call a host program actually wants: parse a query, run it against a graph, get back a
// denormalized response. Each underlying package remains independently usable for callers that
// need finer control (a pre-built query.Node, direct access to the result.Index, ...).
package hiku

import (
	"context"

	"github.com/hikulang/hiku/concurrent"
	"github.com/hikulang/hiku/engine"
	"github.com/hikulang/hiku/graph"
	"github.com/hikulang/hiku/readers/simple"
)

// Engine re-exports engine.Engine so callers that only need the top-level facade don't have to
// import the engine package directly.
type Engine = engine.Engine

// NewEngine builds an Engine that dispatches resolver calls through executor.
func NewEngine(executor concurrent.Executor) *Engine {
	return engine.New(executor)
}

// Execute parses text (spec §6's external query notation) against g and returns the denormalized
// response, in one call. execContext, if non-nil, is reachable from resolvers via
// engine.FromContext.
func Execute(ctx context.Context, e *Engine, g *graph.Graph, text string, execContext map[string]interface{}) (map[string]interface{}, error) {
	q, err := simple.Read(text)
	if err != nil {
		return nil, err
	}

	result, err := e.Execute(ctx, g, q, execContext)
	if err != nil {
		return nil, err
	}
	return result.Denormalize(g)
}
