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

import (
	"context"
	"reflect"

	"github.com/hikulang/hiku/concurrent"
	"github.com/hikulang/hiku/graph"
	"github.com/hikulang/hiku/hikuerr"
	"github.com/hikulang/hiku/query"
	"github.com/hikulang/hiku/result"
)

// execution carries the state threaded through one Engine.Execute call: the engine it was started
// from, the index it writes into, and the graph it walks. It exists so processNode doesn't need to
// pass the same three arguments through every recursive call.
type execution struct {
	engine *Engine
	index  *result.Index
	graph  *graph.Graph
}

// fieldGroup batches every query field backed by the same graph.FieldResolver into a single call,
// per spec §4.B: "multiple query children backed by the same resolver yield one call with the
// union of requested field names." Go function values aren't comparable, so resolver identity is
// taken from the function pointer (reflect.ValueOf(fn).Pointer()) — sound for resolvers that are
// package-level functions or bound once when the schema is built, which is the only way a single
// resolver legitimately backs more than one field.
type fieldGroup struct {
	resolver graph.FieldResolver
	names    []string
}

// processNode is the engine's central recursive step (spec §4.B). idents == nil signals the root
// call: the engine substitutes the single synthetic graph.RootIdent and writes into the
// result.RootNode slot. Otherwise idents is the batch handed down by the parent link.
func (ex *execution) processNode(ctx context.Context, nodeDef *graph.Node, queryNode *query.Node, idents []graph.Ident) error {
	isRoot := idents == nil

	storageNode := nodeDef.Name
	callIdents := idents
	if isRoot {
		storageNode = result.RootNode
		callIdents = []graph.Ident{graph.RootIdent}
	}
	if len(callIdents) == 0 {
		return nil
	}

	queryFields := queryNode.Fields()
	queryLinks := queryNode.Links()

	fieldOptions := make(map[string]query.Options, len(queryFields))
	fieldNames := make([]string, 0, len(queryFields))
	seen := make(map[string]bool, len(queryFields))
	for _, f := range queryFields {
		fieldOptions[f.Name] = f.Options
		fieldNames = append(fieldNames, f.Name)
		seen[f.Name] = true
	}

	// A query Link's name may resolve to either a schema Link (a real traversal) or a schema
	// Field with a compound (Record/Sequence/Optional) declared type requested through the
	// nested-selection syntax `{:name [...]}` — spec §4.E's "a query Link over a graph Field with
	// a declared type." Only the former recurses into another node; the latter is just another
	// field read, resolved and stored exactly like queryFields, with its nested selection used
	// only later by the denormalizer to scope Record projection.
	var schemaLinks []query.Link
	for _, l := range queryLinks {
		if _, ok := nodeDef.LinkByName(l.Name); ok {
			schemaLinks = append(schemaLinks, l)
			continue
		}
		if _, ok := nodeDef.FieldByName(l.Name); ok {
			if !seen[l.Name] {
				seen[l.Name] = true
				fieldNames = append(fieldNames, l.Name)
				fieldOptions[l.Name] = l.Options
			}
			continue
		}
		return schemaError(storageNode, l.Name)
	}

	// A link's Requires names a field on this same node; it must be resolved even if the query
	// itself never asked for it (it is still not exposed through Proxy/Denormalize unless the
	// query also selected it, since those enforce FieldNotRequested against the query tree).
	requiredOnly := make(map[string]bool)
	for _, l := range schemaLinks {
		gl, _ := nodeDef.LinkByName(l.Name)
		if gl.Requires != "" && !seen[gl.Requires] {
			requiredOnly[gl.Requires] = true
		}
	}
	for name := range requiredOnly {
		fieldNames = append(fieldNames, name)
		fieldOptions[name] = nil
	}

	groups, groupOrder, err := ex.groupFields(nodeDef, fieldNames)
	if err != nil {
		return err
	}

	// Wave 1: every field-resolver group, plus every link with no Requires, run concurrently.
	var wave1 []concurrent.TaskHandle
	for _, key := range groupOrder {
		group := groups[key]
		task := ex.fieldTask(ctx, nodeDef, storageNode, group, fieldOptions, callIdents)
		handle, err := ex.engine.executor.Submit(task)
		if err != nil {
			return err
		}
		wave1 = append(wave1, handle)
	}

	var deferredLinks []query.Link
	for _, l := range schemaLinks {
		gl, _ := nodeDef.LinkByName(l.Name)
		if gl.Requires != "" {
			deferredLinks = append(deferredLinks, l)
			continue
		}
		l, gl := l, gl
		handle, err := ex.engine.executor.Submit(concurrent.TaskFunc(func() (interface{}, error) {
			return ex.resolveLink(ctx, gl, l, storageNode, callIdents)
		}))
		if err != nil {
			return err
		}
		wave1 = append(wave1, handle)
	}

	if _, err := concurrent.Await(wave1, ex.engine.timeout); err != nil {
		return err
	}

	// Wave 2: links whose Requires field was just resolved in wave 1.
	var wave2 []concurrent.TaskHandle
	for _, l := range deferredLinks {
		gl, _ := nodeDef.LinkByName(l.Name)
		l, gl := l, gl
		handle, err := ex.engine.executor.Submit(concurrent.TaskFunc(func() (interface{}, error) {
			return ex.resolveLink(ctx, gl, l, storageNode, callIdents)
		}))
		if err != nil {
			return err
		}
		wave2 = append(wave2, handle)
	}
	if _, err := concurrent.Await(wave2, ex.engine.timeout); err != nil {
		return err
	}

	// Recurse into each link's target node, one link at a time (spec's "a level fully completes
	// before the next is scheduled" is about a single branch's depth; nothing requires fanning out
	// across sibling branches, so sequential recursion here keeps the algorithm simple). Compound
	// fields requested via nested selection never recurse here: they have no target node, and
	// their nested selection is applied later, during denormalization.
	for _, l := range schemaLinks {
		gl, _ := nodeDef.LinkByName(l.Name)

		childIdents, err := ex.childIdents(storageNode, callIdents, gl.Name)
		if err != nil {
			return err
		}
		if len(childIdents) == 0 {
			continue
		}
		target, ok := ex.graph.NodeByName(gl.TargetNode())
		if !ok {
			return schemaError(storageNode, gl.Name)
		}
		if err := ex.processNode(ctx, target, l.Node, childIdents); err != nil {
			return err
		}
	}

	return nil
}

func (ex *execution) groupFields(nodeDef *graph.Node, names []string) (map[uintptr]*fieldGroup, []uintptr, error) {
	groups := make(map[uintptr]*fieldGroup)
	var order []uintptr
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		gf, ok := nodeDef.FieldByName(name)
		if !ok {
			return nil, nil, schemaError(nodeDef.Name, name)
		}
		if gf.Resolver == nil {
			continue
		}
		key := reflect.ValueOf(gf.Resolver).Pointer()
		group, ok := groups[key]
		if !ok {
			group = &fieldGroup{resolver: gf.Resolver}
			groups[key] = group
			order = append(order, key)
		}
		group.names = append(group.names, name)
	}
	return groups, order, nil
}

func (ex *execution) fieldTask(ctx context.Context, nodeDef *graph.Node, storageNode string, group *fieldGroup, fieldOptions map[string]query.Options, idents []graph.Ident) concurrent.Task {
	return concurrent.TaskFunc(func() (interface{}, error) {
		options := make(map[string]map[string]interface{}, len(group.names))
		for _, name := range group.names {
			gf, _ := nodeDef.FieldByName(name)
			if len(gf.Options) == 0 {
				continue
			}
			effective, err := graph.ResolveOptions(gf.Options, fieldOptions[name], "field", name)
			if err != nil {
				return nil, err
			}
			options[name] = effective
		}

		rows, err := group.resolver(ctx, group.names, idents, options)
		if err != nil {
			return nil, hikuerr.Wrap(err)
		}
		if len(rows) != len(idents) {
			return nil, resultShapeMismatch("field resolver for %v returned %d rows, expected %d",
				group.names, len(rows), len(idents))
		}

		for i, ident := range idents {
			if len(rows[i]) != len(group.names) {
				return nil, resultShapeMismatch("field resolver for %v returned %d values for ident %v, expected %d",
					group.names, len(rows[i]), ident, len(group.names))
			}
			for j, name := range group.names {
				if err := ex.index.Set(storageNode, ident, name, rows[i][j]); err != nil {
					return nil, err
				}
			}
		}
		return nil, nil
	})
}

// resolveLink invokes a single link's resolver and stores its result(s) as Reference(s) in the
// index, per spec §4.B.2's cardinality rules.
func (ex *execution) resolveLink(ctx context.Context, gl *graph.Link, l query.Link, storageNode string, idents []graph.Ident) (interface{}, error) {
	options, err := graph.ResolveOptions(gl.Options, l.Options, "link", l.Name)
	if err != nil {
		return nil, err
	}

	var requiredValues []interface{}
	if gl.Requires != "" {
		requiredValues = make([]interface{}, len(idents))
		for i, ident := range idents {
			v, _ := ex.index.Peek(storageNode, ident, gl.Requires)
			requiredValues[i] = v
		}
	}

	if gl.Requires == "" {
		raw, err := gl.Resolver(ctx, options, nil)
		if err != nil {
			return nil, hikuerr.Wrap(err)
		}
		value, err := ex.shapeLinkValue(gl, raw)
		if err != nil {
			return nil, err
		}
		for _, ident := range idents {
			if err := ex.index.Set(storageNode, ident, l.Name, value); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	raw, err := gl.Resolver(ctx, options, requiredValues)
	if err != nil {
		return nil, hikuerr.Wrap(err)
	}
	batch, ok := raw.([]interface{})
	if !ok {
		return nil, resultShapeMismatch("link %q resolver did not return a per-ident batch", l.Name)
	}
	if len(batch) != len(idents) {
		return nil, resultShapeMismatch("link %q resolver returned %d results, expected %d", l.Name, len(batch), len(idents))
	}
	for i, ident := range idents {
		value, err := ex.shapeLinkValue(gl, batch[i])
		if err != nil {
			return nil, err
		}
		if err := ex.index.Set(storageNode, ident, l.Name, value); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// shapeLinkValue converts a raw resolver-returned ident (or list of idents, or nil) into the
// Reference(s) stored in the index, per the link's cardinality.
func (ex *execution) shapeLinkValue(gl *graph.Link, raw interface{}) (interface{}, error) {
	target := gl.TargetNode()

	switch gl.Cardinality() {
	case graph.One:
		if raw == nil {
			return nil, resultShapeMismatch("link %q is cardinality One but resolved to null", gl.Name)
		}
		return ex.index.Ref(target, raw), nil

	case graph.Maybe:
		if raw == nil {
			return nil, nil
		}
		return ex.index.Ref(target, raw), nil

	case graph.Many:
		items, ok := raw.([]interface{})
		if !ok {
			return nil, resultShapeMismatch("link %q is cardinality Many but resolved to a non-list", gl.Name)
		}
		refs := make([]*result.Reference, len(items))
		for i, item := range items {
			refs[i] = ex.index.Ref(target, item)
		}
		return refs, nil
	}
	return nil, resultShapeMismatch("link %q has unknown cardinality", gl.Name)
}

// childIdents reads back the just-stored link value(s) for every calling ident and flattens them
// into the unique ident set the engine recurses into (spec: "flattened_unique_idents").
func (ex *execution) childIdents(storageNode string, idents []graph.Ident, linkName string) ([]graph.Ident, error) {
	seen := make(map[interface{}]bool)
	var out []graph.Ident

	for _, ident := range idents {
		v, ok := ex.index.Peek(storageNode, ident, linkName)
		if !ok {
			continue
		}
		switch val := v.(type) {
		case nil:
			continue
		case *result.Reference:
			if !seen[val.Ident] {
				seen[val.Ident] = true
				out = append(out, val.Ident)
			}
		case []*result.Reference:
			for _, ref := range val {
				if !seen[ref.Ident] {
					seen[ref.Ident] = true
					out = append(out, ref.Ident)
				}
			}
		}
	}
	return out, nil
}
