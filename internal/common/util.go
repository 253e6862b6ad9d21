package common

import "crypto/rand"

// GenerateRandByteArray returns size bytes from the OS CSPRNG. Exhaustion of
// the random source is unrecoverable, so failure panics instead of returning
// an error.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// This is useful for removing sensitive data such as plaintext passwords or
// key material from memory after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
