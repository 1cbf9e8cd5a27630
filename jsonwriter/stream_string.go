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

package jsonwriter

const hexDigits = "0123456789abcdef"

// safeSet reports which ASCII bytes can be copied into a JSON string unescaped: every byte from
// 0x20 up except '"' and '\\'. The bytes it marks false are escaped by WriteString.
var safeSet = [utf8RuneSelf]bool{}

const utf8RuneSelf = 0x80

func init() {
	for i := 0; i < utf8RuneSelf; i++ {
		safeSet[i] = i >= 0x20 && i != '"' && i != '\\'
	}
}

// WriteString encodes s as a JSON string, following encoding/json's escaping rules: control
// characters, '"', and '\\' are escaped; everything else, including multi-byte UTF-8 sequences, is
// copied through unchanged.
func (stream *Stream) WriteString(s string) {
	stream.writeOneByte('"')

	start := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= utf8RuneSelf || safeSet[b] {
			continue
		}
		if start < i {
			stream.WriteRawString(s[start:i])
		}
		switch b {
		case '"':
			stream.writeTwoBytes('\\', '"')
		case '\\':
			stream.writeTwoBytes('\\', '\\')
		case '\n':
			stream.writeTwoBytes('\\', 'n')
		case '\r':
			stream.writeTwoBytes('\\', 'r')
		case '\t':
			stream.writeTwoBytes('\\', 't')
		default:
			stream.WriteRawString(`\u00`)
			stream.writeTwoBytes(hexDigits[b>>4], hexDigits[b&0xF])
		}
		start = i + 1
	}
	if start < len(s) {
		stream.WriteRawString(s[start:])
	}
	stream.writeOneByte('"')
}
