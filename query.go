package secureparams

import (
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"
)

// EncodeValues serializes a plain string-to-string mapping into a URL query
// string of the form "key1=value1&key2=value2".
//
// Keys and values are percent-encoded with url.QueryEscape (space becomes
// '+'). Entries whose key or value is not valid UTF-8 cannot be encoded and
// are silently skipped; a single malformed field does not block the rest of
// the query string. Keys are emitted in sorted order so output is
// deterministic. The result carries no leading '?' and no trailing separator;
// an empty or fully-skipped mapping yields an empty string.
func EncodeValues(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for key, value := range values {
		if !utf8.ValidString(key) || !utf8.ValidString(value) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(values[key]))
	}
	return b.String()
}

// DecodeValues parses a query string produced by EncodeValues back into a
// plain mapping. When a key appears more than once, the last occurrence wins.
func DecodeValues(query string) (map[string]string, error) {
	parsed, err := url.ParseQuery(query)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(parsed))
	for key, values := range parsed {
		out[key] = values[len(values)-1]
	}
	return out, nil
}
