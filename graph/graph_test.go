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

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikulang/hiku/graph"
	"github.com/hikulang/hiku/iterator"
	"github.com/hikulang/hiku/types"
)

// buildGraph constructs a Graph shaped like the canonical test schema: a tergate node with a
// self-sufficient link (traces, requires="") to ferulae, plus a root with an indice field and a
// subaru link to tergate.
func buildGraph(t *testing.T) *graph.Graph {
	t.Helper()

	ferulae := graph.NewNode("ferulae",
		&graph.Field{Name: "trilled", Type: types.String},
	)

	tergate := graph.NewNode("tergate",
		&graph.Field{Name: "arion", Type: types.String},
		&graph.Field{Name: "bhaga", Type: types.String},
		&graph.Link{
			Name:     "traces",
			Type:     types.Sequence{Item: types.TypeRef{Node: "ferulae"}},
			Requires: "",
		},
	)

	root := graph.NewNode("root",
		&graph.Field{Name: "indice", Type: types.Integer},
		&graph.Link{
			Name:     "subaru",
			Type:     types.Sequence{Item: types.TypeRef{Node: "tergate"}},
			Requires: "",
		},
	)

	g, err := graph.New([]*graph.Node{ferulae, tergate}, root)
	require.NoError(t, err)
	return g
}

func TestGraphNodeLookup(t *testing.T) {
	g := buildGraph(t)

	tergate, ok := g.NodeByName("tergate")
	require.True(t, ok)
	assert.Equal(t, "tergate", tergate.Name)

	_, ok = g.NodeByName("nonexistent")
	assert.False(t, ok)
}

func TestLinkCardinalityFromType(t *testing.T) {
	g := buildGraph(t)
	tergate, _ := g.NodeByName("tergate")
	traces, ok := tergate.LinkByName("traces")
	require.True(t, ok)
	assert.Equal(t, graph.Many, traces.Cardinality())
	assert.Equal(t, "ferulae", traces.TargetNode())
}

func TestNewRejectsLinkToUndeclaredNode(t *testing.T) {
	root := graph.NewNode("root",
		&graph.Link{Name: "bogus", Type: types.TypeRef{Node: "missing"}},
	)
	_, err := graph.New(nil, root)
	assert.Error(t, err)
}

func TestNewRejectsRequiresOnMissingField(t *testing.T) {
	tergate := graph.NewNode("tergate",
		&graph.Field{Name: "arion", Type: types.String},
	)
	root := graph.NewNode("root",
		&graph.Link{Name: "subaru", Type: types.TypeRef{Node: "tergate"}, Requires: "nonexistent"},
	)
	_, err := graph.New([]*graph.Node{tergate}, root)
	assert.Error(t, err)
}

func TestNodesIteratorVisitsDeclarationOrder(t *testing.T) {
	g := buildGraph(t)

	var names []string
	it := g.Nodes()
	for {
		n, err := it.Next()
		if err == iterator.Done {
			break
		}
		require.NoError(t, err)
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"ferulae", "tergate"}, names)
}

func TestResolveOptionsAppliesDefaultsAndDropsUnknown(t *testing.T) {
	declared := []graph.Option{
		{Name: "tiding", HasDefault: true, Default: nil},
		{Name: "empower", HasDefault: true, Default: "deedily_reaving"},
	}

	effective, err := graph.ResolveOptions(declared, map[string]interface{}{
		"empower": "explicit",
		"unknown": "dropped",
	}, "link", "lungs")
	require.NoError(t, err)
	assert.Equal(t, "explicit", effective["empower"])
	assert.Nil(t, effective["tiding"])
	_, hasUnknown := effective["unknown"]
	assert.False(t, hasUnknown)
}

func TestResolveOptionsMissingRequired(t *testing.T) {
	declared := []graph.Option{
		{Name: "busload"},
	}
	_, err := graph.ResolveOptions(declared, nil, "link", "zovirax")
	assert.Error(t, err)
}
