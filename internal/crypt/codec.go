// Package crypt provides the reversible string codec used for encrypted
// account fields, session tokens, CSRF tokens, and skin fingerprints.
package crypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/argon2"
)

// ErrDecode is returned when a value is not ciphertext produced by this codec
// under the configured key.
var ErrDecode = errors.New("invalid ciphertext")

// ErrEmptyKey is returned by New when no secret is configured.
var ErrEmptyKey = errors.New("encryption key is empty")

// Argon2id parameters used to stretch the configured secret into an AES-256 key.
const (
	kdfTime    = 1
	kdfMemory  = 64 * 1024
	kdfThreads = 4
	keyLen     = 32
)

// Codec encrypts strings with AES-256-CBC under a fixed zero IV and encodes the
// result as standard base64.
//
// The fixed IV makes Encrypt deterministic for a given key and plaintext, which
// is what lets encrypted columns be used as exact-match lookup values.
type Codec struct {
	block cipher.Block
}

// New derives the AES key from secret and salt and returns a ready Codec.
func New(secret, salt string) (*Codec, error) {
	if secret == "" {
		return nil, ErrEmptyKey
	}

	key := argon2.IDKey([]byte(secret), []byte(salt), kdfTime, kdfMemory, kdfThreads, keyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return &Codec{block: block}, nil
}

// Encrypt returns the base64 ciphertext of plaintext.
func (c *Codec) Encrypt(plaintext string) string {
	padded := pad([]byte(plaintext), aes.BlockSize)

	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, make([]byte, aes.BlockSize)).CryptBlocks(out, padded)

	return base64.StdEncoding.EncodeToString(out)
}

// Decrypt reverses Encrypt. Any malformed input yields ErrDecode.
func (c *Codec) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrDecode
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", ErrDecode
	}

	out := make([]byte, len(raw))
	cipher.NewCBCDecrypter(c.block, make([]byte, aes.BlockSize)).CryptBlocks(out, raw)

	plain, ok := unpad(out, aes.BlockSize)
	if !ok {
		return "", ErrDecode
	}

	return string(plain), nil
}

// pad applies PKCS#7 padding.
func pad(data []byte, size int) []byte {
	n := size - len(data)%size
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte, size int) ([]byte, bool) {
	if len(data) == 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > size || n > len(data) {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}
