package common

import "crypto/rand"

// GenerateRandByteArray returns size bytes from crypto/rand.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	// crypto/rand.Read never returns an error on supported platforms
	_, _ = rand.Read(b)
	return b
}

// WipeByteArray overwrites b with zeros. Safe on nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
