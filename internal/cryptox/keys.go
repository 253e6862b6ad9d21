// Package cryptox holds the cryptographic primitives of account
// provisioning: Curve25519 keypair generation, 256-bit secret-box keys,
// Argon2id password hashing, and authenticated folder-name encryption.
package cryptox

import (
	"crypto/rand"

	"golang.org/x/crypto/nacl/box"

	"github.com/dmitrijs2005/anselusd/internal/common"
)

// SymmetricKeySize is the secret-box key length. The password hash is sized
// to match it so a stored hash can stand in for a symmetric key.
const SymmetricKeySize = 32

// GenerateBoxKeypair returns a fresh Curve25519 keypair usable for
// Diffie-Hellman key agreement (NaCl box). Failure of the random source is
// unrecoverable and panics.
func GenerateBoxKeypair() (public, private []byte) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return pub[:], priv[:]
}

// GenerateSymmetricKey returns a fresh 256-bit key for authenticated
// symmetric encryption.
func GenerateSymmetricKey() []byte {
	return common.GenerateRandByteArray(SymmetricKeySize)
}
