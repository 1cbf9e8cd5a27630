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

package concurrent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikulang/hiku/concurrent"
)

func TestLoadWorkerPoolExecutorConfigFromYAML(t *testing.T) {
	config, err := concurrent.LoadWorkerPoolExecutorConfig([]byte("poolSize: 4\nqueueSize: 16\n"))
	require.NoError(t, err)
	assert.Equal(t, uint32(4), config.PoolSize)
	assert.Equal(t, uint32(16), config.QueueSize)
}

func TestLoadWorkerPoolExecutorConfigRejectsInvalid(t *testing.T) {
	_, err := concurrent.LoadWorkerPoolExecutorConfig([]byte("poolSize: 0\nqueueSize: 16\n"))
	assert.Error(t, err)
}

func TestLoadWorkerPoolExecutorConfigRejectsMalformedYAML(t *testing.T) {
	_, err := concurrent.LoadWorkerPoolExecutorConfig([]byte("poolSize: [this is not a uint32\n"))
	assert.Error(t, err)
}
