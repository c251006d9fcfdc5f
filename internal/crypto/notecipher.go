// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// noteCipher is the private implementation of [NoteCipher].
type noteCipher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewNoteCipher constructs a [NoteCipher] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewNoteCipher() NoteCipher {
	return &noteCipher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt implements [NoteCipher]. It reads 16 random bytes from the
// OS CSPRNG. Returns an error if the random read fails.
func (c *noteCipher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [NoteCipher]. It derives a 256-bit key from
// passphrase and salt using Argon2id with the parameters stored in the
// receiver.
func (c *noteCipher) DeriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)
}

// Encrypt implements [NoteCipher]. The ciphertext is base64-encoded and the
// IV is serialized as a JSON array of byte values so both travel as plain
// strings in the note payload.
func (c *noteCipher) Encrypt(plaintext, key []byte) (string, string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", "", err
	}

	ivBytes := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, ivBytes); err != nil {
		return "", "", err
	}

	sealed := gcm.Seal(nil, ivBytes, plaintext, nil)

	iv, err := marshalIV(ivBytes)
	if err != nil {
		return "", "", err
	}

	return base64.StdEncoding.EncodeToString(sealed), iv, nil
}

// Decrypt implements [NoteCipher].
func (c *noteCipher) Decrypt(ciphertext, iv string, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	ivBytes, err := parseIV(iv)
	if err != nil {
		return nil, err
	}
	if len(ivBytes) != gcm.NonceSize() {
		return nil, fmt.Errorf("invalid IV length: got %d, want %d", len(ivBytes), gcm.NonceSize())
	}

	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("invalid ciphertext encoding: %w", err)
	}

	// An authentication failure here almost always means the passphrase
	// was wrong, producing a wrong key.
	plaintext, err := gcm.Open(nil, ivBytes, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// marshalIV renders the IV as a JSON array of byte values ("[1,2,3]").
// json.Marshal on a []byte would base64-encode it instead, so the bytes are
// widened to ints first.
func marshalIV(iv []byte) (string, error) {
	widened := make([]int, len(iv))
	for i, b := range iv {
		widened[i] = int(b)
	}

	data, err := json.Marshal(widened)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// parseIV reverses marshalIV, rejecting values outside the byte range.
func parseIV(iv string) ([]byte, error) {
	var widened []int
	if err := json.Unmarshal([]byte(iv), &widened); err != nil {
		return nil, fmt.Errorf("invalid IV encoding: %w", err)
	}

	ivBytes := make([]byte, len(widened))
	for i, v := range widened {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("invalid IV byte value: %d", v)
		}
		ivBytes[i] = byte(v)
	}
	return ivBytes, nil
}
