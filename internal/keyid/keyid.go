// Package keyid generates the opaque identifier strings attached to every
// key an account owns. IDs are not UUIDs: they are drawn from a large
// multi-script alphabet so that an ID leaks nothing about generation order
// and is impractical to guess.
package keyid

import (
	"crypto/rand"
	"math/big"
)

// MinLength is the smallest permitted ID length. Requests below it are
// rounded up.
const MinLength = 50

// codePointRange is an inclusive range of Unicode code points.
type codePointRange struct {
	lo, hi rune
}

// includeRanges is the fixed table of code-point blocks the alphabet is
// built from. The exact blocks are not load-bearing; the size of the
// flattened alphabet is.
var includeRanges = []codePointRange{
	{0x0021, 0x007E}, // Basic Latin
	{0x00A1, 0x00AC}, // Latin-1 Supplement
	{0x00AE, 0x00FF}, // Latin-1 Supplement
	{0x0100, 0x017F}, // Latin Extended-A
	{0x0180, 0x024F}, // Latin Extended-B
	{0x0250, 0x02AF}, // International Phonetic Alphabet
	{0x0370, 0x0377}, // Greek and Coptic
	{0x037A, 0x037E}, // Greek and Coptic
	{0x0384, 0x038A}, // Greek and Coptic
	{0x038C, 0x038C}, // Greek and Coptic
	{0x038E, 0x03FF}, // Greek and Coptic
	{0x0400, 0x04FF}, // Cyrillic
	{0x0500, 0x052F}, // Cyrillic Supplement
	{0x0600, 0x06FF}, // Arabic
	{0x0750, 0x077F}, // Arabic Supplement
	{0x16A0, 0x16F0}, // Runic
	{0x1E00, 0x1EFF}, // Latin Extended Additional
	{0x2600, 0x26FF}, // Misc. Symbols
	{0x2700, 0x27BF}, // Dingbats
	{0x2C60, 0x2C7F}, // Latin Extended-C
	{0xA720, 0xA7AD}, // Latin Extended-D
}

// alphabet is the flattened selection pool, built once at init.
var alphabet = buildAlphabet()

func buildAlphabet() []rune {
	var runes []rune
	for _, r := range includeRanges {
		for cp := r.lo; cp <= r.hi; cp++ {
			runes = append(runes, cp)
		}
	}
	return runes
}

// AlphabetSize returns the number of candidate characters an ID character is
// chosen from.
func AlphabetSize() int {
	return len(alphabet)
}

// New returns a fresh key ID of the requested length (minimum MinLength).
// Each character is chosen uniformly with the OS CSPRNG; a failing random
// source panics, matching the rest of the generation path.
func New(length int) string {
	if length < MinLength {
		length = MinLength
	}

	max := big.NewInt(int64(len(alphabet)))
	out := make([]rune, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out)
}
