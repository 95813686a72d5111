package token

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
)

// ConfirmationToken returns an opaque token for double-opt-in confirmation
// links. uuid reads from crypto/rand.
func ConfirmationToken() string {
	return uuid.NewString()
}

// Code returns n random decimal digits for SMS confirmation. Bytes >= 250
// are rejected so every digit is uniform.
func Code(n int) (string, error) {
	digits := make([]byte, 0, n)
	buf := make([]byte, 1)
	for len(digits) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		if buf[0] >= 250 {
			continue
		}
		digits = append(digits, '0'+buf[0]%10)
	}
	return string(digits), nil
}
