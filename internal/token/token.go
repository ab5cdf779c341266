package token

import (
	"crypto/rand"
	"fmt"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length   = 20
)

// Generator issues booking tokens: 20 characters from [A-Z0-9], drawn
// from crypto/rand so tokens cannot be enumerated. Uniqueness is the
// store's job; the service retries on collision.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// maxUnbiased is the largest multiple of len(alphabet) below 256. Bytes
// at or above it are rejected; taking them mod 36 would skew the draw
// towards the first alphabet characters.
const maxUnbiased = byte(256 / len(alphabet) * len(alphabet))

func (g *Generator) Generate() (string, error) {
	out := make([]byte, 0, length)
	buf := make([]byte, length)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}

		for _, b := range buf {
			if b >= maxUnbiased {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}
