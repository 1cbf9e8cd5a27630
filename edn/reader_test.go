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

package edn_test

import (
	"testing"
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikulang/hiku/edn"
	"github.com/hikulang/hiku/hikuerr"
)

func TestReadKeywordVector(t *testing.T) {
	v, err := edn.Read("[:arion :bhaga]")
	require.NoError(t, err)
	assert.Equal(t, edn.Vector{edn.Keyword("arion"), edn.Keyword("bhaga")}, v)
}

func TestReadNestedLinkMap(t *testing.T) {
	v, err := edn.Read("[{:subaru [:arion]}]")
	require.NoError(t, err)
	vec := v.(edn.Vector)
	m := vec[0].(edn.Map)
	assert.Equal(t, edn.Vector{edn.Keyword("arion")}, m[edn.Keyword("subaru")])
}

func TestReadListWithOptions(t *testing.T) {
	v, err := edn.Read(`[(:doubled {:empower "X"})]`)
	require.NoError(t, err)
	vec := v.(edn.Vector)
	l := vec[0].(edn.List)
	assert.Equal(t, edn.Keyword("doubled"), l[0])
	m := l[1].(edn.Map)
	assert.Equal(t, "X", m[edn.Keyword("empower")])
}

func TestReadScalars(t *testing.T) {
	v, err := edn.Read(`["hello" 42 3.5 true false nil]`)
	require.NoError(t, err)
	assert.Equal(t, edn.Vector{"hello", int64(42), 3.5, true, false, nil}, v)
}

func TestReadSet(t *testing.T) {
	v, err := edn.Read("#{1 2 3}")
	require.NoError(t, err)
	set := v.(edn.Set)
	assert.Len(t, set, 3)
}

func TestReadInstTruncatesToMillisecondPrecision(t *testing.T) {
	v, err := edn.Read(`#inst "2018-01-02T03:04:05.123456789"`)
	require.NoError(t, err)
	tm := v.(time.Time)
	assert.Equal(t, 2018, tm.Year())
	assert.Equal(t, 123*int(time.Millisecond), tm.Nanosecond())
}

func TestReadUUID(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	v, err := edn.Read(`#uuid "` + id.String() + `"`)
	require.NoError(t, err)
	assert.Equal(t, id, v)
}

func TestReadEmptyTextFails(t *testing.T) {
	_, err := edn.Read("")
	require.Error(t, err)
	kind, ok := hikuerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, hikuerr.KindParseError, kind)
}

func TestReadMultipleTopLevelElementsFails(t *testing.T) {
	_, err := edn.Read("[:a] [:b]")
	require.Error(t, err)
	kind, ok := hikuerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, hikuerr.KindParseError, kind)
}

func TestReadComment(t *testing.T) {
	v, err := edn.Read("[:arion] ; trailing comment")
	require.NoError(t, err)
	assert.Equal(t, edn.Vector{edn.Keyword("arion")}, v)
}
