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

package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikulang/hiku/concurrent"
	"github.com/hikulang/hiku/engine"
)

func TestLoadConfigFromYAML(t *testing.T) {
	config, err := engine.LoadConfig([]byte("timeoutMillis: 250\n"))
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, config.Timeout())
}

func TestNewFromConfigAppliesTimeout(t *testing.T) {
	config, err := engine.LoadConfig([]byte("timeoutMillis: 100\n"))
	require.NoError(t, err)

	e := engine.NewFromConfig(concurrent.NewInlineExecutor(), config)
	assert.NotNil(t, e)
}
