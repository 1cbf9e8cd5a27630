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

// Package simple reads the external query text format (spec §6) into a query.Node, by parsing
// with package edn and then walking the resulting generic values into the query AST. It mirrors
// the original's hiku.readers.simple.
package simple

import (
	"github.com/hikulang/hiku/edn"
	"github.com/hikulang/hiku/hikuerr"
	"github.com/hikulang/hiku/query"
)

// Read parses text into a query.Node. The top-level element must be a Vector (`[...]`); anything
// else, or zero/multiple top-level elements (enforced by edn.Read itself), is a ParseError.
func Read(text string) (*query.Node, error) {
	value, err := edn.Read(text)
	if err != nil {
		return nil, err
	}

	vec, ok := value.(edn.Vector)
	if !ok {
		return nil, hikuerr.New(hikuerr.KindParseError, "top-level query element must be a vector, got %T", value)
	}
	return readNode(vec)
}

func readNode(vec edn.Vector) (*query.Node, error) {
	children := make([]query.Child, 0, len(vec))
	for _, item := range vec {
		child, err := readChild(item)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return query.NewNode(children...), nil
}

func readChild(item interface{}) (query.Child, error) {
	switch v := item.(type) {
	case edn.Keyword:
		return query.Field{Name: string(v)}, nil

	case edn.Map:
		return readLinkMap(v)

	case edn.List:
		return readInvocation(v)

	default:
		return nil, hikuerr.New(hikuerr.KindParseError, "expected a keyword, map, or list in a selection set, got %T", item)
	}
}

// readLinkMap handles the bare nested-link shorthand `{:link-name [selection]}`.
func readLinkMap(m edn.Map) (query.Child, error) {
	if len(m) != 1 {
		return nil, hikuerr.New(hikuerr.KindParseError, "nested-link map must have exactly one entry, got %d", len(m))
	}
	for k, v := range m {
		name, ok := k.(edn.Keyword)
		if !ok {
			return nil, hikuerr.New(hikuerr.KindParseError, "nested-link map key must be a keyword, got %T", k)
		}
		selection, ok := v.(edn.Vector)
		if !ok {
			return nil, hikuerr.New(hikuerr.KindParseError, "nested-link map value must be a vector, got %T", v)
		}
		node, err := readNode(selection)
		if err != nil {
			return nil, err
		}
		return query.Link{Name: string(name), Node: node}, nil
	}
	panic("unreachable")
}

// readInvocation handles `(:name {:opt val ...})`, `(:name [selection])`, and
// `(:name {:opt val ...} [selection])` in either order of the trailing map/vector.
func readInvocation(l edn.List) (query.Child, error) {
	if len(l) == 0 {
		return nil, hikuerr.New(hikuerr.KindParseError, "invocation list must not be empty")
	}
	head, ok := l[0].(edn.Keyword)
	if !ok {
		return nil, hikuerr.New(hikuerr.KindParseError, "invocation list must start with a keyword, got %T", l[0])
	}

	var options query.Options
	var selection edn.Vector
	var hasSelection bool

	for _, arg := range l[1:] {
		switch a := arg.(type) {
		case edn.Map:
			opts, err := readOptions(a)
			if err != nil {
				return nil, err
			}
			options = opts
		case edn.Vector:
			selection = a
			hasSelection = true
		default:
			return nil, hikuerr.New(hikuerr.KindParseError, "invocation argument must be a map or vector, got %T", arg)
		}
	}

	if hasSelection {
		node, err := readNode(selection)
		if err != nil {
			return nil, err
		}
		return query.Link{Name: string(head), Node: node, Options: options}, nil
	}
	return query.Field{Name: string(head), Options: options}, nil
}

func readOptions(m edn.Map) (query.Options, error) {
	opts := make(query.Options, len(m))
	for k, v := range m {
		name, ok := k.(edn.Keyword)
		if !ok {
			return nil, hikuerr.New(hikuerr.KindParseError, "option name must be a keyword, got %T", k)
		}
		opts[string(name)] = v
	}
	return opts, nil
}
