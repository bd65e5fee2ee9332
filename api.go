// Package secureparams models API request parameters where some fields must
// be encrypted before leaving the process and others travel as plain text.
//
// Instead of carrying two parallel structures (the values and a set of
// encryption flags), callers build a single Params mapping whose entries are
// tagged Values:
//
//	p := secureparams.New(
//	    secureparams.Pair{Key: "username", Value: secureparams.Plain("Alice")},
//	    secureparams.Pair{Key: "password", Value: secureparams.Secure("Hello, Bob!")},
//	)
//
// Transform walks the mapping and produces a plain string-to-string mapping,
// delegating every secure entry to an injected Cipher:
//
//	values, err := p.Transform(ctx, cipher)
//
// The result can be serialized by any Codec or rendered as a URL query
// string:
//
//	body, err := p.Encode(ctx, cipher, json.New())
//	query, err := p.EncodeQuery(ctx, cipher)
//
// # Cipher Lifecycle
//
// A Cipher holds at most one in-flight encrypted result. Transform drives it
// through a strict per-entry sequence:
//
//	Encrypt(text) -> SecureText() -> Clear()
//
// Clear after each entry keeps one field's ciphertext from carrying over into
// the next and gives implementations holding sensitive memory an explicit
// erasure point. The built-in AESGCM and RSAOAEP encryptors adapt to this
// contract via NewCipher.
//
// # Struct Binding
//
// Params can also be derived from a tagged struct:
//
//	type Login struct {
//	    Username string `param:"username"`
//	    Password string `param:"password" secure:"true"`
//	}
//
//	p, err := secureparams.Bind(Login{Username: "Alice", Password: "..."})
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//   - form - URL-encoded form bodies (application/x-www-form-urlencoded)
package secureparams

// Cipher is the encryption capability consumed by Transform.
//
// Implementations hold a single in-flight encrypted result: Encrypt stores
// it, SecureText retrieves it, Clear discards it. Transform never overlaps
// uses of one Cipher, so implementations need not be safe for concurrent use
// unless the caller shares them across goroutines.
type Cipher interface {
	// Encrypt encrypts plaintext and retains the encrypted text internally,
	// replacing any prior result.
	Encrypt(plaintext string) error

	// SecureText returns the text stored by the most recent Encrypt call,
	// or an empty string if none is pending.
	SecureText() string

	// Clear discards the internally retained encrypted text.
	Clear()

	// Decrypt returns the plaintext for ciphertext produced by this cipher.
	// Not used by Transform; provided for symmetric round-trip use on the
	// response side.
	Decrypt(ciphertext string) (string, error)
}
