package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// CodeLength is the number of digits in a step-up verification code.
const CodeLength = 6

// GenerateCode returns a fixed-length numeric one-time code.
func GenerateCode() (string, error) {
	var sb strings.Builder
	for i := 0; i < CodeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}

// HashCode returns the hex-encoded sha256 of a code. Only the hash is ever
// persisted.
func HashCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

func uuidString() string {
	return uuid.New().String()
}
