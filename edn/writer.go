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

package edn

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"
)

// Write renders a Go value built from this package's types (plus plain strings, bools, nil,
// int64/float64, time.Time, and uuid.UUID) back into EDN-like text. It is the inverse of Read for
// every value Read can produce, which is what lets the round-trip law in spec §8 hold: Write(Read
// (text)) reproduces the same data, modulo map/set key ordering (sorted here for determinism,
// since Go map iteration order is not).
func Write(value interface{}) string {
	var sb strings.Builder
	write(&sb, value)
	return sb.String()
}

func write(sb *strings.Builder, value interface{}) {
	switch v := value.(type) {
	case nil:
		sb.WriteString("nil")
	case bool:
		sb.WriteString(strconv.FormatBool(v))
	case string:
		writeString(sb, v)
	case int64:
		sb.WriteString(strconv.FormatInt(v, 10))
	case int:
		sb.WriteString(strconv.Itoa(v))
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			// A whole float keeps its ".0" so Read returns a float64, not an int64.
			s += ".0"
		}
		sb.WriteString(s)
	case Symbol:
		sb.WriteString(string(v))
	case Keyword:
		sb.WriteByte(':')
		sb.WriteString(string(v))
	case Vector:
		writeSeq(sb, '[', ']', v)
	case List:
		writeSeq(sb, '(', ')', v)
	case Map:
		writeMap(sb, v)
	case Set:
		writeSet(sb, v)
	case Tag:
		sb.WriteByte('#')
		sb.WriteString(v.Name)
		sb.WriteByte(' ')
		write(sb, v.Value)
	case time.Time:
		sb.WriteString("#inst ")
		writeString(sb, v.UTC().Format("2006-01-02T15:04:05.000"))
	case uuid.UUID:
		sb.WriteString("#uuid ")
		writeString(sb, v.String())
	default:
		fmt.Fprintf(sb, "%v", v)
	}
}

func writeString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, c := range s {
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(c)
		}
	}
	sb.WriteByte('"')
}

func writeSeq(sb *strings.Builder, open, close byte, items []interface{}) {
	sb.WriteByte(open)
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		write(sb, item)
	}
	sb.WriteByte(close)
}

// writeMap sorts entries by their rendered key text so output is deterministic: EDN maps are
// unordered, but a stable textual form is what makes byte-for-byte round-trip tests feasible.
func writeMap(sb *strings.Builder, m Map) {
	keys := make([]string, 0, len(m))
	rendered := make(map[string]interface{}, len(m))
	for k := range m {
		text := Write(k)
		keys = append(keys, text)
		rendered[text] = k
	}
	sort.Strings(keys)

	sb.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		write(sb, rendered[key])
		sb.WriteByte(' ')
		write(sb, m[rendered[key]])
	}
	sb.WriteByte('}')
}

func writeSet(sb *strings.Builder, s Set) {
	keys := make([]string, 0, len(s))
	rendered := make(map[string]interface{}, len(s))
	for k := range s {
		text := Write(k)
		keys = append(keys, text)
		rendered[text] = k
	}
	sort.Strings(keys)

	sb.WriteString("#{")
	for i, key := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		write(sb, rendered[key])
	}
	sb.WriteByte('}')
}
