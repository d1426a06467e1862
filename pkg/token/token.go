package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// ErrInvalidLength is returned when a token of less than one character is requested
var ErrInvalidLength = errors.New("token length must be at least 1")

// Generate returns a crypto-secure random string of length n
// The string is URL safe and contains only the following characters:
// ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_
func Generate(n int) (string, error) {
	if n < 1 {
		return "", ErrInvalidLength
	}

	// base64 increases size by ~33%
	b := make([]byte, base64.RawURLEncoding.DecodedLen(n)+1)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b)[0:n], nil
}
