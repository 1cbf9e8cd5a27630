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

package engine

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hikulang/hiku/concurrent"
)

// Config holds the knobs a host program might want to describe declaratively rather than in Go:
// how long a level's Await may block before giving up. It is a plain struct like
// concurrent.WorkerPoolExecutorConfig, but has no Validate method: every TimeoutMillis value,
// including zero, is accepted.
type Config struct {
	TimeoutMillis uint32 `yaml:"timeoutMillis"`
}

// Timeout returns the configured timeout as a time.Duration; zero means no deadline.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMillis) * time.Millisecond
}

// NewFromConfig builds an Engine from a Config, applying its timeout via WithTimeout.
func NewFromConfig(executor concurrent.Executor, config Config) *Engine {
	return New(executor).WithTimeout(config.Timeout())
}

// LoadConfig reads a Config from YAML, for hosts that keep engine tuning alongside their other
// service configuration rather than wiring it up in Go.
func LoadConfig(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}
