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
	"strconv"
	"strings"
	"time"
	"unicode"

	uuid "github.com/satori/go.uuid"

	"github.com/hikulang/hiku/hikuerr"
)

// TagHandler converts the text following a `#tag` into a Go value. Handler is looked up by tag
// name; a tag with no registered handler is read as a Tag{Name, Value}.
type TagHandler func(value interface{}) (interface{}, error)

// defaultTagHandlers mirrors the built-in tags of the source this reader is modeled on: `inst`
// (ISO-8601 timestamp) and `uuid`.
var defaultTagHandlers = map[string]TagHandler{
	"inst": instHandler,
	"uuid": uuidHandler,
}

// instHandler parses an ISO-8601 instant. The source this is grounded on truncates the string to
// its first 23 characters before parsing (date + time + millisecond precision, dropping any
// timezone offset or finer-than-millisecond digits) — kept verbatim here, including its lossy
// truncation of sub-millisecond precision, for wire compatibility with producers written against
// the original reader.
func instHandler(value interface{}) (interface{}, error) {
	s, ok := value.(string)
	if !ok {
		return nil, hikuerr.New(hikuerr.KindParseError, "#inst requires a string, got %T", value)
	}
	if len(s) > 23 {
		s = s[:23]
	}
	t, err := time.Parse("2006-01-02T15:04:05.000", s)
	if err != nil {
		return nil, hikuerr.New(hikuerr.KindParseError, "#inst: %v", err)
	}
	return t, nil
}

func uuidHandler(value interface{}) (interface{}, error) {
	s, ok := value.(string)
	if !ok {
		return nil, hikuerr.New(hikuerr.KindParseError, "#uuid requires a string, got %T", value)
	}
	id, err := uuid.FromString(s)
	if err != nil {
		return nil, hikuerr.New(hikuerr.KindParseError, "#uuid: %v", err)
	}
	return id, nil
}

// stopChars ends a bare symbol/keyword/number token, mirroring STOP_CHARS in the source this
// reader is modeled on plus the structural delimiters.
const stopChars = " ,\n\r\t[]{}()\";"

// Reader parses EDN-like text into Go values.
type Reader struct {
	tagHandlers map[string]TagHandler
	runes       []rune
	pos         int
}

// NewReader builds a Reader over text. extraTags, if given, augments (and may override) the
// built-in inst/uuid tag handlers.
func NewReader(text string, extraTags map[string]TagHandler) *Reader {
	handlers := make(map[string]TagHandler, len(defaultTagHandlers)+len(extraTags))
	for k, v := range defaultTagHandlers {
		handlers[k] = v
	}
	for k, v := range extraTags {
		handlers[k] = v
	}
	return &Reader{tagHandlers: handlers, runes: []rune(text)}
}

// Read parses text as exactly one top-level element, per spec §6: zero or more than one top-level
// element is a ParseError.
func Read(text string) (interface{}, error) {
	r := NewReader(text, nil)
	r.skipSpaceAndComments()
	if r.eof() {
		return nil, hikuerr.New(hikuerr.KindParseError, "empty query text")
	}

	value, err := r.readValue()
	if err != nil {
		return nil, err
	}

	r.skipSpaceAndComments()
	if !r.eof() {
		return nil, hikuerr.New(hikuerr.KindParseError, "more than one top-level element")
	}
	return value, nil
}

func (r *Reader) eof() bool {
	return r.pos >= len(r.runes)
}

func (r *Reader) peek() rune {
	return r.runes[r.pos]
}

func (r *Reader) next() rune {
	c := r.runes[r.pos]
	r.pos++
	return c
}

func (r *Reader) skipSpaceAndComments() {
	for !r.eof() {
		c := r.peek()
		if c == ';' {
			for !r.eof() && r.peek() != '\n' {
				r.pos++
			}
			continue
		}
		if strings.ContainsRune(" ,\n\r\t", c) {
			r.pos++
			continue
		}
		break
	}
}

func (r *Reader) readValue() (interface{}, error) {
	r.skipSpaceAndComments()
	if r.eof() {
		return nil, hikuerr.New(hikuerr.KindParseError, "unexpected end of input")
	}

	switch c := r.peek(); {
	case c == '[':
		return r.readVector()
	case c == '(':
		return r.readList()
	case c == '{':
		return r.readMap()
	case c == '"':
		return r.readString()
	case c == '#':
		return r.readTagged()
	case c == ':':
		return r.readKeyword()
	default:
		return r.readAtom()
	}
}

func (r *Reader) readVector() (interface{}, error) {
	r.pos++ // consume '['
	items := Vector{}
	for {
		r.skipSpaceAndComments()
		if r.eof() {
			return nil, hikuerr.New(hikuerr.KindParseError, "unterminated vector")
		}
		if r.peek() == ']' {
			r.pos++
			return items, nil
		}
		v, err := r.readValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

func (r *Reader) readList() (interface{}, error) {
	r.pos++ // consume '('
	items := List{}
	for {
		r.skipSpaceAndComments()
		if r.eof() {
			return nil, hikuerr.New(hikuerr.KindParseError, "unterminated list")
		}
		if r.peek() == ')' {
			r.pos++
			return items, nil
		}
		v, err := r.readValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

func (r *Reader) readMap() (interface{}, error) {
	r.pos++ // consume '{'
	var flat []interface{}
	for {
		r.skipSpaceAndComments()
		if r.eof() {
			return nil, hikuerr.New(hikuerr.KindParseError, "unterminated map")
		}
		if r.peek() == '}' {
			r.pos++
			break
		}
		v, err := r.readValue()
		if err != nil {
			return nil, err
		}
		flat = append(flat, v)
	}
	if len(flat)%2 != 0 {
		return nil, hikuerr.New(hikuerr.KindParseError, "map literal has an odd number of elements")
	}
	m := make(Map, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		m[flat[i]] = flat[i+1]
	}
	return m, nil
}

func (r *Reader) readTagged() (interface{}, error) {
	r.pos++ // consume '#'
	if !r.eof() && r.peek() == '{' {
		return r.readSet()
	}

	name, err := r.readSymbolText()
	if err != nil {
		return nil, err
	}
	value, err := r.readValue()
	if err != nil {
		return nil, err
	}
	if handler, ok := r.tagHandlers[name]; ok {
		return handler(value)
	}
	return Tag{Name: name, Value: value}, nil
}

func (r *Reader) readSet() (interface{}, error) {
	r.pos++ // consume '{'
	set := make(Set)
	for {
		r.skipSpaceAndComments()
		if r.eof() {
			return nil, hikuerr.New(hikuerr.KindParseError, "unterminated set")
		}
		if r.peek() == '}' {
			r.pos++
			return set, nil
		}
		v, err := r.readValue()
		if err != nil {
			return nil, err
		}
		set[v] = struct{}{}
	}
}

func (r *Reader) readString() (interface{}, error) {
	r.pos++ // consume opening '"'
	var sb strings.Builder
	for {
		if r.eof() {
			return nil, hikuerr.New(hikuerr.KindParseError, "unterminated string literal")
		}
		c := r.next()
		if c == '"' {
			return sb.String(), nil
		}
		if c == '\\' {
			if r.eof() {
				return nil, hikuerr.New(hikuerr.KindParseError, "unterminated escape sequence")
			}
			esc := r.next()
			switch esc {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case 'r':
				sb.WriteRune('\r')
			case '"':
				sb.WriteRune('"')
			case '\\':
				sb.WriteRune('\\')
			default:
				sb.WriteRune(esc)
			}
			continue
		}
		sb.WriteRune(c)
	}
}

func (r *Reader) readKeyword() (interface{}, error) {
	r.pos++ // consume ':'
	name, err := r.readSymbolText()
	if err != nil {
		return nil, err
	}
	return Keyword(name), nil
}

func (r *Reader) readSymbolText() (string, error) {
	start := r.pos
	for !r.eof() && !strings.ContainsRune(stopChars, r.peek()) {
		r.pos++
	}
	if r.pos == start {
		return "", hikuerr.New(hikuerr.KindParseError, "expected a name at position %d", start)
	}
	return string(r.runes[start:r.pos]), nil
}

func (r *Reader) readAtom() (interface{}, error) {
	start := r.pos
	for !r.eof() && !strings.ContainsRune(stopChars, r.peek()) {
		r.pos++
	}
	text := string(r.runes[start:r.pos])
	if text == "" {
		return nil, hikuerr.New(hikuerr.KindParseError, "unexpected character %q", string(r.peek()))
	}

	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "nil":
		return nil, nil
	}

	if isNumberToken(text) {
		if strings.ContainsAny(text, ".eE") {
			f, err := strconv.ParseFloat(text, 64)
			if err == nil {
				return f, nil
			}
		} else {
			i, err := strconv.ParseInt(text, 10, 64)
			if err == nil {
				return i, nil
			}
		}
	}

	return Symbol(text), nil
}

func isNumberToken(s string) bool {
	i := 0
	if len(s) == 0 {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		i = 1
	}
	if i >= len(s) {
		return false
	}
	return unicode.IsDigit(rune(s[i]))
}
