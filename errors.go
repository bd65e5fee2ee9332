package secureparams

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrEncrypt indicates encryption of a secure entry failed.
	ErrEncrypt = errors.New("encrypt failed")

	// ErrDecrypt indicates decryption of a response value failed.
	ErrDecrypt = errors.New("decrypt failed")

	// ErrMarshal indicates the codec failed to marshal transformed values.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrInvalidKeySize indicates an encryption key has an invalid size.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrCiphertextShort indicates ciphertext is too short to decrypt.
	ErrCiphertextShort = errors.New("ciphertext too short")

	// ErrDecryptionFailed indicates the underlying cipher rejected ciphertext.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// TransformError represents a capability failure during Transform or Restore.
// It wraps a sentinel error with the key of the entry that failed.
type TransformError struct {
	Err   error  // Underlying sentinel error (ErrEncrypt, ErrDecrypt)
	Key   string // Parameter key that failed
	Cause error  // Original error from the cipher
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s for key %q: %v", e.Err.Error(), e.Key, e.Cause)
	}
	return fmt.Sprintf("%s for key %q", e.Err.Error(), e.Key)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// BindError represents an invalid parameter tag on a struct field.
type BindError struct {
	Err   error  // Underlying sentinel error (ErrInvalidTag)
	Field string // Field name that triggered the error
	Tag   string // Offending tag value
}

func (e *BindError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Tag, e.Field)
	}
	return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// newTransformError creates a TransformError for a failed entry.
func newTransformError(sentinel error, key string, cause error) error {
	return &TransformError{
		Err:   sentinel,
		Key:   key,
		Cause: cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}

// newBindError creates a BindError for struct tag failures.
func newBindError(sentinel error, field, tag string) error {
	return &BindError{
		Err:   sentinel,
		Field: field,
		Tag:   tag,
	}
}
