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

import "github.com/hikulang/hiku/edn"

// Reference is a lazy pointer at (Node, Ident) within an Index. It carries no data of its own;
// Get resolves it against the Index at read time, which is always after the engine has finished
// writing (spec §5's single-suspension-point model means no reader ever races a writer).
type Reference struct {
	index *Index
	Node  string
	Ident interface{}
}

// Get resolves the referenced object's attribute map: MissingObject if (Node, Ident) was never
// written, distinct from a present object missing a specific field (that surfaces later, from
// Proxy.Get).
func (r *Reference) Get() (map[string]interface{}, error) {
	return r.index.lookup(r.Node, r.Ident)
}

// String renders the reference the way Index.Serialize does: #graph/ref [node ident].
func (r *Reference) String() string {
	return edn.Write(referenceTag(r))
}

// Equal compares two references structurally, ignoring which Index they were cut from (tests
// build expected references against a throwaway Index and compare only Node/Ident).
func (r *Reference) Equal(other *Reference) bool {
	if other == nil {
		return false
	}
	return r.Node == other.Node && r.Ident == other.Ident
}
