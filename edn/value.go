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

// Package edn implements the external query text notation (spec §6): a small EDN-like data
// language of symbols, keywords, vectors, maps, lists, sets, and tagged literals, read into plain
// Go values that package readers/simple then walks into a query.Node tree.
package edn

import "fmt"

// Symbol is a bare identifier, used as the invocation head in a List: `(field-name {...})`.
type Symbol string

// Keyword is a `:name` token, used for field/link/option names.
type Keyword string

// Vector is a `[...]` selection set.
type Vector []interface{}

// List is a `(...)` invocation: a head (Symbol or Keyword) followed by option maps/arguments.
type List []interface{}

// Map is a `{...}` literal: an option map or, as a Vector element, nested-link notation
// (`{:link-name [selection]}`). Key order is not preserved; EDN maps are unordered.
type Map map[interface{}]interface{}

// Set is a `#{...}` literal.
type Set map[interface{}]struct{}

// Tag is a generic `#tag value` tagged literal not recognized by a built-in handler.
type Tag struct {
	Name  string
	Value interface{}
}

func (t Tag) String() string {
	return fmt.Sprintf("#%s %v", t.Name, t.Value)
}
