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

package result_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikulang/hiku/hikuerr"
	"github.com/hikulang/hiku/result"
)

func TestIndexSetAndReferenceGet(t *testing.T) {
	idx := result.NewIndex()
	require.NoError(t, idx.Set("tergate", 1, "arion", "boners_friezes"))

	ref := idx.Ref("tergate", 1)
	obj, err := ref.Get()
	require.NoError(t, err)
	assert.Equal(t, "boners_friezes", obj["arion"])
}

func TestReferenceGetMissingObject(t *testing.T) {
	idx := result.NewIndex()
	ref := idx.Ref("tergate", 999)
	_, err := ref.Get()
	require.Error(t, err)
	kind, ok := hikuerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, hikuerr.KindMissingObject, kind)
}

func TestSetAfterFinalizeFails(t *testing.T) {
	idx := result.NewIndex()
	idx.Finalize()

	err := idx.Set("tergate", 1, "arion", "value")
	require.Error(t, err)
	kind, ok := hikuerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, hikuerr.KindIndexFinalized, kind)
}

func TestRootRefRoundTrips(t *testing.T) {
	idx := result.NewIndex()
	require.NoError(t, idx.SetRoot("indice", 42))

	obj, err := idx.RootRef().Get()
	require.NoError(t, err)
	assert.Equal(t, 42, obj["indice"])
}

func TestReferenceStringFormat(t *testing.T) {
	idx := result.NewIndex()
	ref := idx.Ref("ferulae", 2)
	assert.Equal(t, "#graph/ref [:ferulae 2]", ref.String())
}
