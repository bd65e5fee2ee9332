package secureparams

// Value is a tagged text value: either plain text that is sent through
// unchanged, or secure text that must pass through a Cipher before leaving
// the process. The tag is fixed at construction and no content validation is
// performed; empty strings are accepted.
type Value struct {
	text   string
	secure bool
}

// Plain returns a Value that Transform copies verbatim.
// It is the explicit form of a bare string parameter.
func Plain(text string) Value {
	return Value{text: text}
}

// Secure returns a Value that Transform encrypts via the injected Cipher.
func Secure(text string) Value {
	return Value{text: text, secure: true}
}

// Text returns the value's text content, before any encryption.
func (v Value) Text() string {
	return v.text
}

// IsSecure reports whether the value must be encrypted on transform.
func (v Value) IsSecure() bool {
	return v.secure
}
