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
	"github.com/hikulang/hiku/graph"
	"github.com/hikulang/hiku/query"
	"github.com/hikulang/hiku/types"
)

// Denormalize walks the merged query against the index starting at Root, producing a nested
// map[string]interface{} shaped exactly like the query, with every Reference resolved to its
// target object's own denormalized shape. This is the public entry the engine calls once
// execution finishes and the index has been finalized.
func Denormalize(g *graph.Graph, idx *Index, q *query.Node) (map[string]interface{}, error) {
	proxy := NewProxy(idx.RootRef(), q)
	return denormalizeNode(g, g.Root(), proxy, q)
}

// denormalizeNode reads every child the query asks for off a single object, via proxy, projecting
// Field values by their declared type and recursing through Link values into their target nodes.
func denormalizeNode(g *graph.Graph, node *graph.Node, proxy *Proxy, q *query.Node) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(q.Children))

	for _, field := range q.Fields() {
		raw, err := proxy.Get(field.Name)
		if err != nil {
			return nil, err
		}

		var declared types.Descriptor
		if gf, ok := node.FieldByName(field.Name); ok {
			declared = gf.Type
		}
		out[field.Name] = projectValue(declared, raw, nil)
	}

	for _, link := range q.Links() {
		raw, err := proxy.Get(link.Name)
		if err != nil {
			return nil, err
		}

		if gl, ok := node.LinkByName(link.Name); ok {
			target, _ := g.NodeByName(gl.TargetNode())
			value, err := denormalizeLink(g, target, link.Node, raw)
			if err != nil {
				return nil, err
			}
			out[link.Name] = value
			continue
		}

		// Not a schema Link: the query selected a compound graph.Field (one with a Record,
		// Sequence, or Optional declared type) using the nested-selection syntax — spec §4.E's
		// "a query Link over a graph Field with a declared type." Project it like any other
		// field, but scoped to this selection's own children rather than every declared key.
		if gf, ok := node.FieldByName(link.Name); ok {
			out[link.Name] = projectValue(gf.Type, raw, link.Node)
			continue
		}

		out[link.Name] = raw
	}

	return out, nil
}

// denormalizeLink dispatches on the raw stored value's shape: a single *Reference, a nil/Reference
// pair (Maybe), or a []*Reference (Many), recursing denormalizeNode for each resolved reference.
func denormalizeLink(g *graph.Graph, target *graph.Node, innerQuery *query.Node, raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case *Reference:
		proxy := NewProxy(v, innerQuery)
		return denormalizeNode(g, target, proxy, innerQuery)
	case []*Reference:
		out := make([]interface{}, len(v))
		for i, ref := range v {
			proxy := NewProxy(ref, innerQuery)
			item, err := denormalizeNode(g, target, proxy, innerQuery)
			if err != nil {
				return nil, err
			}
			out[i] = item
		}
		return out, nil
	default:
		// Opaque link value (no declared type projection applies); return verbatim.
		return raw, nil
	}
}

// projectValue shapes a raw field value according to its declared type: Record drops any keys the
// type doesn't declare, Sequence/Optional recurse into the wrapped type, and everything else
// (Scalar, TypeRef, a nil/untyped field) passes through untouched.
//
// selection, when non-nil, is the query's own nested selection for this value (present when a
// compound field was requested through the `{:name [...]}` syntax rather than as a bare field
// name) and scopes a Record's projected keys to what was actually asked for, instead of every
// key the type declares; nil means "no sub-selection," so every declared key is projected, as for
// a bare field reference.
func projectValue(declared types.Descriptor, raw interface{}, selection *query.Node) interface{} {
	switch t := declared.(type) {
	case types.Record:
		obj, ok := raw.(map[string]interface{})
		if !ok {
			return raw
		}
		if selection == nil {
			projected := make(map[string]interface{}, len(t.FieldOrder))
			for _, name := range t.FieldOrder {
				projected[name] = projectValue(t.FieldTypes[name], obj[name], nil)
			}
			return projected
		}

		projected := make(map[string]interface{}, len(selection.Children))
		for _, f := range selection.Fields() {
			projected[f.Name] = projectValue(t.FieldTypes[f.Name], obj[f.Name], nil)
		}
		for _, l := range selection.Links() {
			projected[l.Name] = projectValue(t.FieldTypes[l.Name], obj[l.Name], l.Node)
		}
		return projected

	case types.Sequence:
		items, ok := raw.([]interface{})
		if !ok {
			return raw
		}
		projected := make([]interface{}, len(items))
		for i, item := range items {
			projected[i] = projectValue(t.Item, item, selection)
		}
		return projected

	case types.Optional:
		if raw == nil {
			return nil
		}
		return projectValue(t.Item, raw, selection)

	default:
		return raw
	}
}
