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

// Package graph implements the schema graph (spec §3, §4.B's schema half): Node/Field/Link/Option
// declarations plus the Graph that owns them and a distinguished Root.
package graph

import (
	"context"

	"github.com/hikulang/hiku/iterator"
	"github.com/hikulang/hiku/types"
)

// Ident is an opaque identity value for an object within a node. Its concrete type is chosen by
// whatever resolver produced it (an integer primary key, a UUID, a composite struct, ...).
type Ident = interface{}

// Cardinality classifies how many idents a Link resolves each input into.
type Cardinality int

// Enumeration of Cardinality.
const (
	// One: a link that always resolves to exactly one ident per input.
	One Cardinality = iota
	// Maybe: a link that resolves to one ident or a null marker (nil) per input.
	Maybe
	// Many: a link that resolves to a list of idents per input.
	Many
)

func (c Cardinality) String() string {
	switch c {
	case One:
		return "One"
	case Maybe:
		return "Maybe"
	case Many:
		return "Many"
	default:
		return "Unknown"
	}
}

// FieldResolver answers a batch of field requests for a set of idents in one call: fields names
// the requested fields (already deduplicated and unioned across the query children that share this
// resolver), and idents is the set of objects to read them from. The root node is modeled as a
// single synthetic ident (see graph.RootIdent) rather than a special no-idents call, so the return
// shape is always the same: one []interface{} per ident, positionally aligned to fields.
//
// options carries, for each name in fields that declares options, the effective options map the
// engine computed for it (declared defaults applied, unknown query options dropped); a field with
// no declared options is simply absent from the map.
type FieldResolver func(ctx context.Context, fields []string, idents []Ident, options map[string]map[string]interface{}) ([][]interface{}, error)

// RootIdent is the sole ident under the pseudo-node the engine uses for Root: spec §3's
// `__root__`/`__root__` pair. Root field resolvers are invoked with idents == []Ident{RootIdent}.
var RootIdent Ident = "__root__"

// LinkResolver resolves a link's target ident(s). When the link Requires a field, requiredValues
// holds one value per calling ident (positionally aligned, like FieldResolver) and the resolver is
// called once for the whole batch; the returned value must then itself be a slice of per-ident
// results, shaped by Cardinality (see Link.Cardinality doc). When the link has no Requires,
// requiredValues is nil and the resolver is called exactly once regardless of how many idents are
// at the calling level; its single cardinality-shaped result is reused for every one of them.
type LinkResolver func(ctx context.Context, options map[string]interface{}, requiredValues []interface{}) (interface{}, error)

// Option is a declared named argument to a Field or Link. A missing Default means the option is
// required; HasDefault distinguishes "no default" from "default value is nil".
type Option struct {
	Name       string
	Type       types.Descriptor
	Default    interface{}
	HasDefault bool
}

// Member is implemented by Field and Link: the two kinds of declaration a Node may carry.
type Member interface {
	MemberName() string
	member()
}

// Field is a scalar-or-compound attribute. Type is nil for an "opaque" field not further projected
// by the denormalizer (its resolved value is returned to the caller verbatim).
type Field struct {
	Name         string
	Type         types.Descriptor
	Resolver     FieldResolver
	Options      []Option
	ContextAware bool
}

// MemberName implements Member.
func (f *Field) MemberName() string {
	return f.Name
}

func (*Field) member() {}

// Link is a traversal from the containing Node to another Node. Requires, if non-empty, names a
// field on the containing Node whose resolved value(s) feed this link's resolver.
type Link struct {
	Name         string
	Type         types.Descriptor
	Resolver     LinkResolver
	Requires     string
	Options      []Option
	ContextAware bool
}

// MemberName implements Member.
func (l *Link) MemberName() string {
	return l.Name
}

func (*Link) member() {}

// Cardinality inspects Type to classify this link: Sequence[TypeRef[T]] is Many, Optional[TypeRef[T]]
// is Maybe, and a bare TypeRef[T] is One.
func (l *Link) Cardinality() Cardinality {
	switch t := l.Type.(type) {
	case types.Sequence:
		return Many
	case types.Optional:
		return Maybe
	case types.TypeRef:
		_ = t
		return One
	default:
		return One
	}
}

// TargetNode unwraps Type down to the TypeRef it must ultimately contain and returns the
// referenced node name.
func (l *Link) TargetNode() string {
	switch t := l.Type.(type) {
	case types.Sequence:
		if ref, ok := t.Item.(types.TypeRef); ok {
			return ref.Node
		}
	case types.Optional:
		if ref, ok := t.Item.(types.TypeRef); ok {
			return ref.Node
		}
	case types.TypeRef:
		return t.Node
	}
	return ""
}

// Node is a named collection of Members, unique per Graph.
type Node struct {
	Name    string
	Members []Member
}

// NewNode builds a Node from its members.
func NewNode(name string, members ...Member) *Node {
	return &Node{Name: name, Members: members}
}

// FieldByName looks up a direct Field member.
func (n *Node) FieldByName(name string) (*Field, bool) {
	for _, m := range n.Members {
		if f, ok := m.(*Field); ok && f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// LinkByName looks up a direct Link member.
func (n *Node) LinkByName(name string) (*Link, bool) {
	for _, m := range n.Members {
		if l, ok := m.(*Link); ok && l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// Graph owns a set of Node declarations plus a distinguished Root.
type Graph struct {
	nodes map[string]*Node
	order []string
	root  *Node
}

// New builds a Graph from nodes and a distinguished root node, validating spec §3's invariants:
// every Link's TypeRef resolves to a declared node (Field types are not checked), every Requires
// names an existing field on its own
// node, and option names are unique per field/link. Root itself does not need to be present in
// nodes; it is reachable only via graph.Root().
func New(nodes []*Node, root *Node) (*Graph, error) {
	g := &Graph{
		nodes: make(map[string]*Node, len(nodes)),
		order: make([]string, 0, len(nodes)),
		root:  root,
	}
	for _, n := range nodes {
		if _, exists := g.nodes[n.Name]; exists {
			return nil, schemaError("duplicate node name %q", n.Name)
		}
		g.nodes[n.Name] = n
		g.order = append(g.order, n.Name)
	}

	if err := g.validate(root); err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if err := g.validate(n); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Root returns the graph's distinguished root node.
func (g *Graph) Root() *Node {
	return g.root
}

// NodeByName looks up a node declaration.
func (g *Graph) NodeByName(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// NodeIterator iterates the graph's non-root nodes in declaration order, following this module's
// iterator convention (see package iterator) since Go has no generic container to range over.
type NodeIterator struct {
	g *Graph
	i int
}

// Nodes returns an iterator over the graph's declared nodes, in declaration order.
func (g *Graph) Nodes() *NodeIterator {
	return &NodeIterator{g: g}
}

// Next returns the next Node in the iteration, or iterator.Done when exhausted.
func (it *NodeIterator) Next() (*Node, error) {
	if it.i >= len(it.g.order) {
		return nil, iterator.Done
	}
	name := it.g.order[it.i]
	it.i++
	return it.g.nodes[name], nil
}

func (g *Graph) validate(n *Node) error {
	if n == nil {
		return nil
	}
	for _, m := range n.Members {
		if err := validateOptions(n.Name, m); err != nil {
			return err
		}
		switch member := m.(type) {
		case *Link:
			if err := g.validateLink(n, member); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Graph) validateLink(n *Node, l *Link) error {
	if l.Requires != "" {
		if _, ok := n.FieldByName(l.Requires); !ok {
			return schemaError("link %s.%s requires field %q, which does not exist on %s",
				n.Name, l.Name, l.Requires, n.Name)
		}
	}
	target := l.TargetNode()
	if target == "" {
		return schemaError("link %s.%s has a type that does not resolve to a TypeRef", n.Name, l.Name)
	}
	if _, ok := g.nodes[target]; !ok {
		return schemaError("link %s.%s refers to undeclared node %q", n.Name, l.Name, target)
	}
	return nil
}

func validateOptions(nodeName string, m Member) error {
	var options []Option
	switch member := m.(type) {
	case *Field:
		options = member.Options
	case *Link:
		options = member.Options
	}

	seen := make(map[string]bool, len(options))
	for _, opt := range options {
		if seen[opt.Name] {
			return schemaError("%s.%s declares option %q more than once", nodeName, m.MemberName(), opt.Name)
		}
		seen[opt.Name] = true
	}
	return nil
}
