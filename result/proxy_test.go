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
	"github.com/hikulang/hiku/query"
	"github.com/hikulang/hiku/result"
)

func TestProxyGetRequestedField(t *testing.T) {
	idx := result.NewIndex()
	require.NoError(t, idx.Set("tergate", 1, "arion", "boners_friezes"))

	q := query.NewNode(query.NewField("arion"))
	proxy := result.NewProxy(idx.Ref("tergate", 1), q)

	v, err := proxy.Get("arion")
	require.NoError(t, err)
	assert.Equal(t, "boners_friezes", v)
}

func TestProxyGetFieldNotRequested(t *testing.T) {
	idx := result.NewIndex()
	require.NoError(t, idx.Set("tergate", 1, "arion", "boners_friezes"))
	require.NoError(t, idx.Set("tergate", 1, "bhaga", "julio_mousy"))

	q := query.NewNode(query.NewField("arion"))
	proxy := result.NewProxy(idx.Ref("tergate", 1), q)

	_, err := proxy.Get("bhaga")
	require.Error(t, err)
	kind, ok := hikuerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, hikuerr.KindFieldNotRequested, kind)
}

func TestProxyGetMissingFieldInIndex(t *testing.T) {
	idx := result.NewIndex()
	require.NoError(t, idx.Set("tergate", 1, "arion", "boners_friezes"))

	q := query.NewNode(query.NewField("arion"), query.NewField("bhaga"))
	proxy := result.NewProxy(idx.Ref("tergate", 1), q)

	_, err := proxy.Get("bhaga")
	require.Error(t, err)
	kind, ok := hikuerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, hikuerr.KindMissingField, kind)
}
