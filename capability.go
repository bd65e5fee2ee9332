package secureparams

import (
	"encoding/base64"
	"fmt"
)

// slotCipher adapts an Encryptor to the single-slot Cipher contract.
// Ciphertext is carried as base64 text so results can travel in query
// strings and text bodies.
type slotCipher struct {
	enc  Encryptor
	slot string
}

// NewCipher wraps an Encryptor in the single-slot Cipher contract consumed
// by Transform: Encrypt stores base64 ciphertext internally, SecureText
// retrieves it, Clear discards it.
//
// The returned Cipher is not safe for concurrent use; Transform serializes
// its calls, but callers sharing one cipher across goroutines must do the
// same.
func NewCipher(enc Encryptor) Cipher {
	return &slotCipher{enc: enc}
}

func (c *slotCipher) Encrypt(plaintext string) error {
	ciphertext, err := c.enc.Encrypt([]byte(plaintext))
	if err != nil {
		return err
	}
	c.slot = base64.StdEncoding.EncodeToString(ciphertext)
	return nil
}

func (c *slotCipher) SecureText() string {
	return c.slot
}

func (c *slotCipher) Clear() {
	c.slot = ""
}

func (c *slotCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("base64 decode: %w", err)
	}

	plaintext, err := c.enc.Decrypt(raw)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
