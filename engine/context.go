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

package engine

import "context"

// executionContextKey is the private key under which Execute's caller-supplied context map rides
// inside the standard context.Context passed to every resolver. The source this module is modeled
// on treats "pass context" as a per-resolver opt-in — here every resolver already receives a
// context.Context (the idiomatic Go way to thread a request-scoped value and cancellation signal),
// so there is no separate call shape for context-aware vs. plain resolvers: any resolver may call
// FromContext, and Field/Link.ContextAware remains purely a schema-introspection hint.
type executionContextKey struct{}

// withExecutionContext attaches the caller-supplied execution context map, returning ctx unchanged
// if values is empty.
func withExecutionContext(ctx context.Context, values map[string]interface{}) context.Context {
	if len(values) == 0 {
		return ctx
	}
	return context.WithValue(ctx, executionContextKey{}, values)
}

// FromContext retrieves a value the caller passed to Execute's execContext argument. Resolvers
// that want request-scoped data (the equivalent of a context-aware resolver in the source this
// engine is modeled on) call this rather than receiving it as a distinguished parameter.
func FromContext(ctx context.Context, key string) (interface{}, bool) {
	values, ok := ctx.Value(executionContextKey{}).(map[string]interface{})
	if !ok {
		return nil, false
	}
	v, ok := values[key]
	return v, ok
}
