// Package credential hashes passwords and issues temporary ones.
package credential

import (
	"crypto/rand"
	"errors"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const tempAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// DefaultTempLength applies when no length is configured
const DefaultTempLength = 8

var ErrMismatch = errors.New("credential: password does not match")

// Hash returns a salted bcrypt hash of password
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify returns nil when password matches hash, ErrMismatch when it does not
func Verify(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

// TempPassword returns a random lowercase alphanumeric token of length n
func TempPassword(n int) (string, error) {
	if n <= 0 {
		n = DefaultTempLength
	}
	max := big.NewInt(int64(len(tempAlphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = tempAlphabet[idx.Int64()]
	}
	return string(out), nil
}
