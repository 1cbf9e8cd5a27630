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

package graph

import (
	"github.com/hikulang/hiku/hikuerr"
)

// ResolveOptions computes the effective options map a resolver is called with, per spec §4.B.3:
// declared options supply their Default when the query omitted them (MissingRequiredOption if a
// declared option has no default and was omitted); option names the query supplied but the
// member did not declare are silently dropped, matching hiku's own permissive behavior
// (test_link_option_unknown in the original test suite).
func ResolveOptions(declared []Option, supplied map[string]interface{}, memberKind, memberName string) (map[string]interface{}, error) {
	effective := make(map[string]interface{}, len(declared))
	for _, opt := range declared {
		if v, ok := supplied[opt.Name]; ok {
			effective[opt.Name] = v
			continue
		}
		if opt.HasDefault {
			effective[opt.Name] = opt.Default
			continue
		}
		return nil, hikuerr.New(hikuerr.KindMissingRequiredOption,
			"%s %q requires option %q", memberKind, memberName, opt.Name)
	}
	return effective, nil
}
