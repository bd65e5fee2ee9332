// Package form provides a URL-encoded form codec implementation.
//
// Unlike the structured codecs, form bodies can only carry flat
// string-to-string mappings, which is exactly the shape Transform produces.
package form

import (
	"fmt"

	"github.com/dSunny90/secureparams"
)

// formCodec implements secureparams.Codec for URL-encoded form bodies.
type formCodec struct{}

// New returns a form codec.
func New() secureparams.Codec {
	return &formCodec{}
}

// ContentType returns the MIME type for URL-encoded forms.
func (c *formCodec) ContentType() string {
	return "application/x-www-form-urlencoded"
}

// Marshal encodes a map[string]string as a URL-encoded form body.
// Entries that cannot be percent-encoded are skipped, matching
// secureparams.EncodeValues.
func (c *formCodec) Marshal(v any) ([]byte, error) {
	values, ok := v.(map[string]string)
	if !ok {
		return nil, fmt.Errorf("form: cannot marshal %T, want map[string]string", v)
	}
	return []byte(secureparams.EncodeValues(values)), nil
}

// Unmarshal decodes a URL-encoded form body into a *map[string]string.
func (c *formCodec) Unmarshal(data []byte, v any) error {
	target, ok := v.(*map[string]string)
	if !ok {
		return fmt.Errorf("form: cannot unmarshal into %T, want *map[string]string", v)
	}

	values, err := secureparams.DecodeValues(string(data))
	if err != nil {
		return err
	}
	*target = values
	return nil
}
