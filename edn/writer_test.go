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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikulang/hiku/edn"
)

func TestWriteKeywordVector(t *testing.T) {
	assert.Equal(t, "[:arion :bhaga]", edn.Write(edn.Vector{edn.Keyword("arion"), edn.Keyword("bhaga")}))
}

func TestWriteRoundTripsThroughRead(t *testing.T) {
	for _, text := range []string{
		"[:arion :bhaga]",
		`[(:doubled {:empower "X"})]`,
		"#{1 2 3}",
	} {
		v, err := edn.Read(text)
		require.NoError(t, err)

		roundTripped, err := edn.Read(edn.Write(v))
		require.NoError(t, err)
		assert.Equal(t, v, roundTripped)
	}
}

func TestWriteMapSortsKeysDeterministically(t *testing.T) {
	m := edn.Map{edn.Keyword("b"): int64(2), edn.Keyword("a"): int64(1)}
	assert.Equal(t, "{:a 1 :b 2}", edn.Write(m))
}
