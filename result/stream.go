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

package result

import (
	"fmt"
	"io"
	"sort"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/hikulang/hiku/edn"
	"github.com/hikulang/hiku/jsonwriter"
)

// StreamJSON writes the full normalized index, root object included, as JSON directly to w,
// without building an intermediate []byte (the concern jsonwriter.Stream exists for: a host
// streaming a large finalized Index straight onto an HTTP response body). It walks the same
// node -> ident -> field -> value tree Serialize renders as EDN text, via jsonwriter.Stream
// instead of edn.Write; every *Reference is written as its #graph/ref string form, since JSON has
// no tagged-literal notation of its own.
func (idx *Index) StreamJSON(w io.Writer) error {
	stream := jsonwriter.NewStream(w)
	writeEDNValue(stream, idx.toEDN())
	if err := stream.Error(); err != nil {
		return err
	}
	return stream.Flush()
}

// writeEDNValue writes any value edn.Read/Index.toEDN can produce as JSON: Map/Vector/Set become
// object/array/array, a Tag (including #graph/ref) becomes its string form, and scalars map onto
// their natural JSON representation.
func writeEDNValue(stream *jsonwriter.Stream, value interface{}) {
	switch v := value.(type) {
	case nil:
		stream.WriteNil()
	case bool:
		stream.WriteBool(v)
	case string:
		stream.WriteString(v)
	case int64:
		stream.WriteInt64(v)
	case int:
		stream.WriteInt(v)
	case float64:
		stream.WriteFloat64(v)
	case edn.Keyword:
		stream.WriteString(string(v))
	case edn.Symbol:
		stream.WriteString(string(v))
	case edn.Tag:
		stream.WriteString(edn.Write(v))
	case time.Time:
		stream.WriteString(v.UTC().Format("2006-01-02T15:04:05.000"))
	case uuid.UUID:
		stream.WriteString(v.String())
	case edn.Vector:
		writeEDNSeq(stream, v)
	case []interface{}:
		writeEDNSeq(stream, v)
	case edn.Map:
		writeEDNMap(stream, v)
	case edn.Set:
		writeEDNSet(stream, v)
	default:
		stream.WriteInterface(v)
	}
}

func writeEDNSeq(stream *jsonwriter.Stream, items []interface{}) {
	stream.WriteArrayStart()
	for i, item := range items {
		if i > 0 {
			stream.WriteMore()
		}
		writeEDNValue(stream, item)
	}
	stream.WriteArrayEnd()
}

// writeEDNMap renders an edn.Map as a JSON object; keys are stringified and sorted, since JSON
// object keys must be strings and, unlike edn.Write's textual output, stable ordering here is only
// a determinism nicety rather than something a reader depends on.
func writeEDNMap(stream *jsonwriter.Stream, m edn.Map) {
	keys := make([]string, 0, len(m))
	byKey := make(map[string]interface{}, len(m))
	for k, v := range m {
		text := ednKeyString(k)
		keys = append(keys, text)
		byKey[text] = v
	}
	sort.Strings(keys)

	stream.WriteObjectStart()
	for i, key := range keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(key)
		writeEDNValue(stream, byKey[key])
	}
	stream.WriteObjectEnd()
}

func writeEDNSet(stream *jsonwriter.Stream, s edn.Set) {
	keys := make([]string, 0, len(s))
	byKey := make(map[string]interface{}, len(s))
	for k := range s {
		text := ednKeyString(k)
		keys = append(keys, text)
		byKey[text] = k
	}
	sort.Strings(keys)

	stream.WriteArrayStart()
	for i, key := range keys {
		if i > 0 {
			stream.WriteMore()
		}
		writeEDNValue(stream, byKey[key])
	}
	stream.WriteArrayEnd()
}

func ednKeyString(key interface{}) string {
	switch k := key.(type) {
	case string:
		return k
	case edn.Keyword:
		return string(k)
	case edn.Symbol:
		return string(k)
	default:
		return fmt.Sprintf("%v", k)
	}
}
