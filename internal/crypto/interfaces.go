// Package crypto implements the client-side cryptography of the
// zero-knowledge scheme. The server only ever sees opaque ciphertext; all
// key material lives in client memory.
//
// Scheme:
//
//	salt      = GenerateSalt()                     (once per user)
//	key       = DeriveKey(passphrase, salt)        (Argon2id, in memory only)
//	ct, iv    = Encrypt(plaintext, key)            (AES-256-GCM)
//	plaintext = Decrypt(ct, iv, key)
//
// The IV travels alongside the ciphertext as a JSON array of byte values
// (e.g. "[12,34,56,...]"), matching the image_iv wire format.
package crypto

// NoteCipher encrypts and decrypts note payloads on the client. It knows
// nothing about the network, storage, or users.
type NoteCipher interface {
	// GenerateSalt returns a fresh random salt (16 bytes / 128 bits).
	// The salt is not a secret and may be stored in the clear; it only
	// ensures that identical passphrases derive different keys.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit encryption key from the passphrase and
	// salt using Argon2id. The key never leaves client memory.
	DeriveKey(passphrase string, salt []byte) []byte

	// Encrypt seals plaintext with AES-256-GCM under key. It returns the
	// base64-encoded ciphertext and the IV serialized as a JSON array of
	// byte values. A fresh random IV is drawn for every call.
	Encrypt(plaintext, key []byte) (ciphertext, iv string, err error)

	// Decrypt reverses [NoteCipher.Encrypt]. It returns an error if the
	// IV cannot be parsed, the key is wrong, or the ciphertext has been
	// tampered with (authentication-tag mismatch).
	Decrypt(ciphertext, iv string, key []byte) ([]byte, error)
}
