package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// ShareTokenAlphabet avoids ambiguous characters (0/O, 1/I/L) so tokens
// survive being read aloud or retyped.
const ShareTokenAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789abcdefghjkmnpqrstuvwxyz"

const shareTokenLength = 32

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// NewShareToken returns an unguessable token for contract share links.
func NewShareToken() (string, error) {
	return RandomString(shareTokenLength, ShareTokenAlphabet)
}

// RandomString returns a cryptographically secure, unbiased string of the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}
