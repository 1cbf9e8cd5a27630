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

// Serialize renders the full normalized index, root object included, as EDN-like text per
// spec §6: node name -> ident -> field name -> value, with every *Reference rendered as
// `#graph/ref [node ident]`. It may be called before or after Finalize; either way it only reads.
func (idx *Index) Serialize() string {
	return edn.Write(idx.toEDN())
}

func (idx *Index) toEDN() edn.Map {
	nodes := edn.Map{}
	for node, idents := range idx.nodes {
		identMap := edn.Map{}
		for ident, obj := range idents {
			fields := edn.Map{}
			for name, value := range obj {
				fields[edn.Keyword(name)] = serializeValue(value)
			}
			identMap[ident] = fields
		}
		nodes[edn.Keyword(node)] = identMap
	}
	return nodes
}

func serializeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case *Reference:
		return referenceTag(v)
	case []*Reference:
		tags := make(edn.Vector, len(v))
		for i, ref := range v {
			tags[i] = referenceTag(ref)
		}
		return tags
	default:
		return v
	}
}

func referenceTag(ref *Reference) edn.Tag {
	return edn.Tag{Name: "graph/ref", Value: edn.Vector{edn.Keyword(ref.Node), ref.Ident}}
}
