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

package simple_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikulang/hiku/query"
	"github.com/hikulang/hiku/readers/simple"
)

func TestReadPlainFields(t *testing.T) {
	node, err := simple.Read("[:arion :bhaga]")
	require.NoError(t, err)
	assert.Equal(t, []query.Field{query.NewField("arion"), query.NewField("bhaga")}, node.Fields())
}

func TestReadNestedLink(t *testing.T) {
	node, err := simple.Read("[{:subaru [:arion]}]")
	require.NoError(t, err)
	links := node.Links()
	require.Len(t, links, 1)
	assert.Equal(t, "subaru", links[0].Name)
	assert.Equal(t, []query.Field{query.NewField("arion")}, links[0].Node.Fields())
}

func TestReadFieldWithOptions(t *testing.T) {
	node, err := simple.Read(`[(:doubled {:empower "X"})]`)
	require.NoError(t, err)
	fields := node.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "X", fields[0].Options["empower"])
}

func TestReadLinkWithOptionsAndSelection(t *testing.T) {
	node, err := simple.Read(`[(:zovirax {:busload "X"} [:arion])]`)
	require.NoError(t, err)
	links := node.Links()
	require.Len(t, links, 1)
	assert.Equal(t, "X", links[0].Options["busload"])
	assert.Equal(t, []query.Field{query.NewField("arion")}, links[0].Node.Fields())
}

func TestReadNonVectorTopLevelFails(t *testing.T) {
	_, err := simple.Read(`:arion`)
	assert.Error(t, err)
}

func TestReadUnrecognizedChildFails(t *testing.T) {
	_, err := simple.Read(`["bare string"]`)
	assert.Error(t, err)
}
