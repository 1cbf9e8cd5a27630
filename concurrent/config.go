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

package concurrent

import (
	"gopkg.in/yaml.v3"
)

// yamlWorkerPoolExecutorConfig mirrors WorkerPoolExecutorConfig with yaml struct tags; kept
// separate so the exported config stays free of serialization concerns it doesn't otherwise need.
type yamlWorkerPoolExecutorConfig struct {
	PoolSize  uint32 `yaml:"poolSize"`
	QueueSize uint32 `yaml:"queueSize"`
}

// LoadWorkerPoolExecutorConfig reads a WorkerPoolExecutorConfig from YAML, for deployments that
// keep executor sizing in a config file alongside the rest of their service configuration. The
// result is validated before being returned.
func LoadWorkerPoolExecutorConfig(data []byte) (WorkerPoolExecutorConfig, error) {
	var raw yamlWorkerPoolExecutorConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return WorkerPoolExecutorConfig{}, err
	}

	config := WorkerPoolExecutorConfig{PoolSize: raw.PoolSize, QueueSize: raw.QueueSize}
	if err := config.Validate(); err != nil {
		return WorkerPoolExecutorConfig{}, err
	}
	return config, nil
}
