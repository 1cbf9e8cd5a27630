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

// Package result implements the normalized object index (spec §4.C), the lazy Reference/Proxy
// view over it (spec §4.D), and the query-directed denormalizer that turns it into a nested,
// JSON-marshalable response (spec §4.E).
package result

import (
	"github.com/hikulang/hiku/hikuerr"
)

// RootNode is the name of the pseudo-node holding Root's single synthetic object, mirroring the
// `__root__` sentinel in the original implementation.
const RootNode = "__root__"

// Index is the two-level normalized store the engine writes into as it resolves a query: node
// name -> ident -> attribute name -> value. Values are either plain data (whatever a FieldResolver
// returned) or a *Reference pointing at another node/ident pair.
//
// Per spec §5, an Index is mutated only from the engine's single orchestration goroutine; once
// Finalize has been called it is read-only and safe for concurrent readers.
type Index struct {
	nodes     map[string]map[interface{}]map[string]interface{}
	finalized bool
}

// NewIndex builds an empty Index with its root object already present, matching the original's
// `root` cached property: callers always have somewhere to write Root's fields.
func NewIndex() *Index {
	idx := &Index{
		nodes: make(map[string]map[interface{}]map[string]interface{}),
	}
	idx.object(RootNode, RootNode)
	return idx
}

// object returns the attribute map for (node, ident), creating it (and the node's ident map) on
// first use. Finalize must not have been called yet.
func (idx *Index) object(node string, ident interface{}) map[string]interface{} {
	idents, ok := idx.nodes[node]
	if !ok {
		idents = make(map[interface{}]map[string]interface{})
		idx.nodes[node] = idents
	}
	obj, ok := idents[ident]
	if !ok {
		obj = make(map[string]interface{})
		idents[ident] = obj
	}
	return obj
}

// Set records a resolved attribute value for (node, ident, name). Storing a *Reference encodes a
// link's resolved target; anything else is a resolved field value.
func (idx *Index) Set(node string, ident interface{}, name string, value interface{}) error {
	if idx.finalized {
		return hikuerr.New(hikuerr.KindIndexFinalized, "cannot write to a finalized index")
	}
	idx.object(node, ident)[name] = value
	return nil
}

// SetRoot is Set against the Root pseudo-object, for the engine's top-level field/link writes.
func (idx *Index) SetRoot(name string, value interface{}) error {
	return idx.Set(RootNode, RootNode, name, value)
}

// Ref builds a Reference to (node, ident). Building a Reference never touches the Index; it is
// only a lazy pointer, resolved on first read through Proxy.
func (idx *Index) Ref(node string, ident interface{}) *Reference {
	return &Reference{index: idx, Node: node, Ident: ident}
}

// RootRef is Ref against the Root pseudo-object.
func (idx *Index) RootRef() *Reference {
	return idx.Ref(RootNode, RootNode)
}

// Peek reads an attribute already written during execution without the MissingObject/MissingField
// error semantics Reference.Get has: it is used internally by the engine, before finalization, to
// fetch a field's value that a same-level link's Requires depends on, which by construction was
// always written first.
func (idx *Index) Peek(node string, ident interface{}, field string) (interface{}, bool) {
	idents, ok := idx.nodes[node]
	if !ok {
		return nil, false
	}
	obj, ok := idents[ident]
	if !ok {
		return nil, false
	}
	v, ok := obj[field]
	return v, ok
}

// Finalize marks the index read-only. The engine calls this once query execution completes; any
// further Set call returns IndexFinalized.
func (idx *Index) Finalize() {
	idx.finalized = true
}

// lookup returns the attribute map for (node, ident), or MissingObject when the node/ident pair is
// absent. A present object lacking the requested attribute (MissingField) is reported by the
// caller, matching the original's two distinct AssertionError messages.
func (idx *Index) lookup(node string, ident interface{}) (map[string]interface{}, error) {
	idents, ok := idx.nodes[node]
	if !ok {
		return nil, missingObject(node, ident)
	}
	obj, ok := idents[ident]
	if !ok {
		return nil, missingObject(node, ident)
	}
	return obj, nil
}

func missingObject(node string, ident interface{}) error {
	return hikuerr.New(hikuerr.KindMissingObject, "no object %s[%v] in index", node, ident)
}

func missingField(node string, ident interface{}, field string) error {
	return hikuerr.New(hikuerr.KindMissingField, "object %s[%v] has no field %q in index", node, ident, field)
}
