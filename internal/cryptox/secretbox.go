package cryptox

import (
	"errors"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/dmitrijs2005/anselusd/internal/common"
)

// NonceSize is the secret-box nonce length in bytes.
const NonceSize = 24

var (
	ErrBadKeySize     = errors.New("secretbox key must be 32 bytes")
	ErrCiphertextSize = errors.New("ciphertext too short to hold a nonce")
	ErrDecryptFailed  = errors.New("decryption failed")
)

// Seal encrypts plaintext under key with a fresh random nonce. The nonce is
// prepended to the returned ciphertext so the output is self-contained; any
// holder of the key can decrypt with Open.
func Seal(plaintext, key []byte) ([]byte, error) {
	if len(key) != SymmetricKeySize {
		return nil, ErrBadKeySize
	}

	var k [SymmetricKeySize]byte
	copy(k[:], key)

	var nonce [NonceSize]byte
	copy(nonce[:], common.GenerateRandByteArray(NonceSize))

	return secretbox.Seal(nonce[:], plaintext, &nonce, &k), nil
}

// Open reverses Seal. Tampered ciphertext or a wrong key yields
// ErrDecryptFailed, never silent garbage.
func Open(ciphertext, key []byte) ([]byte, error) {
	if len(key) != SymmetricKeySize {
		return nil, ErrBadKeySize
	}
	if len(ciphertext) < NonceSize {
		return nil, ErrCiphertextSize
	}

	var k [SymmetricKeySize]byte
	copy(k[:], key)

	var nonce [NonceSize]byte
	copy(nonce[:], ciphertext[:NonceSize])

	plaintext, ok := secretbox.Open(nil, ciphertext[NonceSize:], &nonce, &k)
	if !ok {
		return nil, ErrDecryptFailed
	}
	return plaintext, nil
}
