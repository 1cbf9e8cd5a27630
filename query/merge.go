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

package query

import (
	"github.com/hikulang/hiku/hikuerr"
)

// Merge combines a list of Node's into one, per spec §4.A: children are grouped by name; two
// Fields of the same name must carry equal Options (else ConflictingOptions); two Links of the
// same name must carry equal Options and their inner Nodes are merged recursively. Merge is
// commutative and associative: nodes may be supplied in any order, and Merge(Merge(a, b), c) ==
// Merge(a, Merge(b, c)).
func Merge(nodes []*Node) (*Node, error) {
	var (
		order   []string
		fields  = map[string]Field{}
		links   = map[string][]Link{}
		isLink  = map[string]bool{}
		isField = map[string]bool{}
	)

	for _, node := range nodes {
		if node == nil {
			continue
		}
		for _, child := range node.Children {
			name := child.ChildName()
			switch c := child.(type) {
			case Field:
				if isLink[name] {
					return nil, conflictingKinds(name)
				}
				if existing, seen := fields[name]; seen {
					if !existing.Options.Equal(c.Options) {
						return nil, conflictingOptions(name)
					}
					continue
				}
				if !isField[name] {
					order = append(order, name)
				}
				isField[name] = true
				fields[name] = c

			case Link:
				if isField[name] {
					return nil, conflictingKinds(name)
				}
				if existing, seen := links[name]; seen {
					if !existing[0].Options.Equal(c.Options) {
						return nil, conflictingOptions(name)
					}
				} else if !isLink[name] {
					order = append(order, name)
				}
				isLink[name] = true
				links[name] = append(links[name], c)
			}
		}
	}

	merged := &Node{Children: make([]Child, 0, len(order))}
	for _, name := range order {
		if isField[name] {
			merged.Children = append(merged.Children, fields[name])
			continue
		}

		group := links[name]
		innerNodes := make([]*Node, 0, len(group))
		for _, l := range group {
			innerNodes = append(innerNodes, l.Node)
		}
		innerMerged, err := Merge(innerNodes)
		if err != nil {
			return nil, err
		}
		merged.Children = append(merged.Children, Link{
			Name:    name,
			Node:    innerMerged,
			Options: group[0].Options,
		})
	}

	return merged, nil
}

func conflictingOptions(name string) error {
	return hikuerr.New(hikuerr.KindConflictingOptions,
		"conflicting options for %q across merged queries", name)
}

func conflictingKinds(name string) error {
	return hikuerr.New(hikuerr.KindConflictingOptions,
		"%q is requested as both a field and a link across merged queries", name)
}
