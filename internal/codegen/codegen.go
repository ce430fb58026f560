package codegen

import (
	"crypto/rand"
	"fmt"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator produces random short codes: each character drawn independently
// and uniformly from the 62-character alphanumeric alphabet, using a
// cryptographically strong source. Stateless; collisions are the caller's
// problem.
type Generator struct {
	length int
}

func New(length int) *Generator {
	return &Generator{length: length}
}

func (g *Generator) Generate() (string, error) {
	buf := make([]byte, g.length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	code := make([]byte, g.length)
	for i, b := range buf {
		// 62*4 = 248 keeps the distribution uniform; redraw the rare tail.
		for b >= 248 {
			var one [1]byte
			if _, err := rand.Read(one[:]); err != nil {
				return "", fmt.Errorf("read random bytes: %w", err)
			}
			b = one[0]
		}
		code[i] = alphabet[b%62]
	}
	return string(code), nil
}
