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

package result

import (
	"github.com/hikulang/hiku/hikuerr"
	"github.com/hikulang/hiku/query"
)

// Proxy is the read surface handed to application code once a query has finished executing: a
// Reference paired with the query.Node that scoped what may legally be read off it. Unlike the
// original's Proxy, which only raises on attribute access (`__getattr__`/`__getitem__`), Get
// returns errors explicitly, per this module's error-handling convention.
type Proxy struct {
	ref   *Reference
	query *query.Node
}

// NewProxy builds a Proxy over a resolved reference, scoped to the fields/links the query actually
// asked for.
func NewProxy(ref *Reference, q *query.Node) *Proxy {
	return &Proxy{ref: ref, query: q}
}

// Reference returns the underlying Reference, for denormalizer code that needs the bare
// Node/Ident pair (e.g. to recurse into a link's target node).
func (p *Proxy) Reference() *Reference {
	return p.ref
}

// Get resolves a single attribute by its response name. It enforces FieldNotRequested before
// touching the index at all: a name the merged query didn't select is a caller bug, kept distinct
// from MissingObject/MissingField, which indicate the index itself is incomplete.
func (p *Proxy) Get(name string) (interface{}, error) {
	if _, ok := p.query.ChildByName(name); !ok {
		return nil, hikuerr.New(hikuerr.KindFieldNotRequested,
			"field %q was not requested on %s", name, p.ref.Node)
	}

	obj, err := p.ref.Get()
	if err != nil {
		return nil, err
	}

	value, ok := obj[name]
	if !ok {
		return nil, missingField(p.ref.Node, p.ref.Ident, name)
	}
	return value, nil
}
