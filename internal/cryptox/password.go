package cryptox

import (
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrijs2005/anselusd/internal/common"
)

// SaltSize is the Argon2id salt length in bytes.
const SaltSize = 16

// Argon2Params are the cost parameters for password hashing. The defaults
// are an interactive profile: bounded enough for a login path, not tuned for
// offline-only secrets.
type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// InteractiveParams returns the default interactive cost profile.
func InteractiveParams() Argon2Params {
	return Argon2Params{Time: 1, MemoryKiB: 64 * 1024, Threads: 4}
}

// Validate rejects parameter sets argon2 would refuse or that degrade the
// hash to uselessness. Called once at hasher construction so a bad profile
// fails at startup rather than per account.
func (p Argon2Params) Validate() error {
	if p.Time == 0 {
		return fmt.Errorf("%w: time cost must be >= 1", common.ErrorKDFMisconfigured)
	}
	if p.MemoryKiB < 8*uint32(p.Threads) {
		return fmt.Errorf("%w: memory must be at least 8 KiB per thread", common.ErrorKDFMisconfigured)
	}
	if p.Threads == 0 {
		return fmt.Errorf("%w: thread count must be >= 1", common.ErrorKDFMisconfigured)
	}
	return nil
}

// PasswordHasher derives storage-safe password hashes with Argon2id.
type PasswordHasher struct {
	params Argon2Params
}

// NewPasswordHasher validates the cost parameters and returns a hasher.
func NewPasswordHasher(p Argon2Params) (*PasswordHasher, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &PasswordHasher{params: p}, nil
}

// Hash derives a hash of password under a fresh random salt and returns
// both. The hash is always SymmetricKeySize bytes regardless of the cost
// parameters.
func (h *PasswordHasher) Hash(password string) (salt, hash []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	return salt, h.HashWithSalt(password, salt)
}

// HashWithSalt derives the hash for a caller-provided salt. Deterministic
// for fixed (password, salt, params); used for verification.
func (h *PasswordHasher) HashWithSalt(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt,
		h.params.Time, h.params.MemoryKiB, h.params.Threads, SymmetricKeySize)
}
