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

// Package query implements the query AST (spec §3, §4.A): a tree of Field/Link children grouped
// under a Node, produced by the edn/readers/simple reader and consumed by engine and result.
package query

import "reflect"

// Options is a named-argument map attached to a Field or Link in the query text, e.g. the
// `{:empower "X"}` in `(:doubled {:empower "X"})`.
type Options map[string]interface{}

// Equal reports whether two Options maps hold the same keys and values. nil and an empty Options
// are considered equal, matching the reader producing nil when no map literal was written.
func (o Options) Equal(other Options) bool {
	if len(o) != len(other) {
		return false
	}
	for k, v := range o {
		ov, ok := other[k]
		if !ok || !optionValueEqual(v, ov) {
			return false
		}
	}
	return true
}

// optionValueEqual compares two option values for equality. Option values are whatever the reader
// produces: scalars, tagged literals (time.Time, uuid.UUID), and also vectors, maps and sets, which
// are not comparable with ==, so values are compared deeply.
func optionValueEqual(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}

// Child is implemented by Field and Link: the two kinds of node a query.Node may select.
type Child interface {
	// ChildName is the query-encountered name used as both the requested field/link name and the
	// response key under which the denormalizer places its value.
	ChildName() string

	// child marks the interface closed over Field and Link.
	child()
}

// Field is a leaf selection: a scalar-or-opaque-compound attribute read without further descent,
// other than what the schema's declared type requires the denormalizer to walk through.
type Field struct {
	Name    string
	Options Options
}

// ChildName implements Child.
func (f Field) ChildName() string {
	return f.Name
}

func (Field) child() {}

// NewField builds a Field with no options, the common case in tests and examples.
func NewField(name string) Field {
	return Field{Name: name}
}

// Link is a traversal selection: a named edge whose result is described by a nested Node.
type Link struct {
	Name    string
	Node    *Node
	Options Options
}

// ChildName implements Child.
func (l Link) ChildName() string {
	return l.Name
}

func (Link) child() {}

// Node is a selection set: an ordered list of Field/Link children. Order matters for
// denormalization (result key order follows the query) but not for engine batching.
type Node struct {
	Children []Child
}

// NewNode builds a Node from a list of children, in order.
func NewNode(children ...Child) *Node {
	return &Node{Children: children}
}

// Fields returns the Field children of n, in order.
func (n *Node) Fields() []Field {
	fields := make([]Field, 0, len(n.Children))
	for _, c := range n.Children {
		if f, ok := c.(Field); ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// Links returns the Link children of n, in order.
func (n *Node) Links() []Link {
	links := make([]Link, 0, len(n.Children))
	for _, c := range n.Children {
		if l, ok := c.(Link); ok {
			links = append(links, l)
		}
	}
	return links
}

// ChildByName looks up a direct child by its response key. It is what result.Proxy uses to
// implement FieldNotRequested: a name absent from the merged query node is not a valid access.
func (n *Node) ChildByName(name string) (Child, bool) {
	for _, c := range n.Children {
		if c.ChildName() == name {
			return c, true
		}
	}
	return nil, false
}
