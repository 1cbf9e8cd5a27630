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
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikulang/hiku/result"
)

func TestStreamJSONRendersRootFields(t *testing.T) {
	idx := result.NewIndex()
	require.NoError(t, idx.SetRoot("version", int64(1)))
	require.NoError(t, idx.SetRoot("label", "release"))

	var buf bytes.Buffer
	require.NoError(t, idx.StreamJSON(&buf))

	var doc map[string]map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	fields := doc[result.RootNode][result.RootNode]
	assert.Equal(t, float64(1), fields["version"])
	assert.Equal(t, "release", fields["label"])
}

func TestStreamJSONRendersReferencesAsGraphRefString(t *testing.T) {
	idx := result.NewIndex()
	ref := idx.Ref("tergate", int64(1))
	require.NoError(t, idx.SetRoot("subaru", ref))

	var buf bytes.Buffer
	require.NoError(t, idx.StreamJSON(&buf))

	assert.Contains(t, buf.String(), `"#graph/ref [:tergate 1]"`)
}

func TestStreamJSONEscapesStringsLikeEncodingJSON(t *testing.T) {
	idx := result.NewIndex()
	require.NoError(t, idx.SetRoot("quoted", "a \"quote\" and a\nline break"))

	var buf bytes.Buffer
	require.NoError(t, idx.StreamJSON(&buf))

	var doc map[string]map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "a \"quote\" and a\nline break", doc[result.RootNode][result.RootNode]["quoted"])
}
