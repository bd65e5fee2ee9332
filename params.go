package secureparams

import (
	"context"
	"time"
)

// Pair is a single key/value entry used to construct Params.
type Pair struct {
	Key   string
	Value Value
}

// Params is a read-only mapping from parameter key to tagged Value.
//
// Params are built once from an ordered pair list and never mutated
// afterwards; all operations either look entries up or produce new plain
// mappings. A zero Params is empty and usable.
type Params struct {
	values map[string]Value
}

// New builds Params from an ordered sequence of pairs.
// When a key appears more than once, the last occurrence wins.
func New(pairs ...Pair) Params {
	values := make(map[string]Value, len(pairs))
	for _, pair := range pairs {
		values[pair.Key] = pair.Value
	}
	return Params{values: values}
}

// Get returns the value for key and whether the key is present.
func (p Params) Get(key string) (Value, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Len returns the number of entries.
func (p Params) Len() int {
	return len(p.values)
}

// secureCount returns the number of secure entries.
func (p Params) secureCount() int {
	n := 0
	for _, v := range p.values {
		if v.secure {
			n++
		}
	}
	return n
}

// Transform produces a plain string-to-string mapping from the Params.
//
// Plain entries are copied verbatim without touching the cipher. For each
// secure entry the cipher is driven through Encrypt, SecureText, and Clear in
// that order, and the entry's value becomes the retrieved secure text. Entry
// processing order is unspecified.
//
// The first cipher failure aborts the transform and is returned wrapped in a
// TransformError; no partial mapping is returned.
func (p Params) Transform(ctx context.Context, cipher Cipher) (map[string]string, error) {
	start := time.Now()
	secure := p.secureCount()
	emitTransformStart(ctx, len(p.values), secure)

	var retErr error
	defer func() {
		emitTransformComplete(ctx, len(p.values), secure, time.Since(start), retErr)
	}()

	out := make(map[string]string, len(p.values))
	for key, val := range p.values {
		if !val.secure {
			out[key] = val.text
			continue
		}

		if err := cipher.Encrypt(val.text); err != nil {
			retErr = newTransformError(ErrEncrypt, key, err)
			return nil, retErr
		}
		out[key] = cipher.SecureText()
		cipher.Clear()
	}

	return out, nil
}

// Restore is the response-side inverse of Transform: for every key the
// Params marks secure, the corresponding entry in values is decrypted via
// the cipher. Plain entries and keys unknown to the Params are copied
// verbatim.
//
// The first cipher failure aborts the restore and is returned wrapped in a
// TransformError.
func (p Params) Restore(ctx context.Context, cipher Cipher, values map[string]string) (map[string]string, error) {
	start := time.Now()
	secure := p.secureCount()
	emitRestoreStart(ctx, len(values), secure)

	var retErr error
	defer func() {
		emitRestoreComplete(ctx, len(values), secure, time.Since(start), retErr)
	}()

	out := make(map[string]string, len(values))
	for key, text := range values {
		if val, ok := p.values[key]; !ok || !val.secure {
			out[key] = text
			continue
		}

		plaintext, err := cipher.Decrypt(text)
		if err != nil {
			retErr = newTransformError(ErrDecrypt, key, err)
			return nil, retErr
		}
		out[key] = plaintext
	}

	return out, nil
}

// Encode transforms the Params and marshals the result with the given codec.
// Codec failures are returned wrapped in a CodecError.
func (p Params) Encode(ctx context.Context, cipher Cipher, codec Codec) ([]byte, error) {
	start := time.Now()

	var retErr error
	var retData []byte
	defer func() {
		emitEncodeComplete(ctx, codec.ContentType(), len(retData), time.Since(start), retErr)
	}()

	values, err := p.Transform(ctx, cipher)
	if err != nil {
		retErr = err
		return nil, retErr
	}

	retData, err = codec.Marshal(values)
	if err != nil {
		retData = nil
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}

	return retData, nil
}

// EncodeQuery transforms the Params and renders the result as a URL query
// string. See EncodeValues for the encoding rules.
func (p Params) EncodeQuery(ctx context.Context, cipher Cipher) (string, error) {
	values, err := p.Transform(ctx, cipher)
	if err != nil {
		return "", err
	}
	return EncodeValues(values), nil
}
