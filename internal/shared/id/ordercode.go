// Package id generates human-shareable order codes.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// OrderCodePrefix prefixes every generated order code.
	OrderCodePrefix = "ANI"

	// OrderCodeDigits is the number of random digits after the prefix.
	OrderCodeDigits = 6

	digits = "0123456789"
)

// NewOrderCode creates a random order code in the format "ANI" followed by
// OrderCodeDigits decimal digits. The code is URL-safe and suitable for
// free-text search. Uniqueness across existing orders is the caller's
// responsibility (see the order code generator in the repository layer).
func NewOrderCode() (string, error) {
	var sb strings.Builder
	sb.Grow(len(OrderCodePrefix) + OrderCodeDigits)
	sb.WriteString(OrderCodePrefix)

	max := big.NewInt(int64(len(digits)))
	for i := 0; i < OrderCodeDigits; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		sb.WriteByte(digits[n.Int64()])
	}

	return sb.String(), nil
}

// MustNewOrderCode creates a random order code and panics on error.
func MustNewOrderCode() string {
	code, err := NewOrderCode()
	if err != nil {
		panic(err)
	}
	return code
}

// IsOrderCode reports whether s looks like a generated order code.
func IsOrderCode(s string) bool {
	if len(s) != len(OrderCodePrefix)+OrderCodeDigits {
		return false
	}
	if !strings.HasPrefix(s, OrderCodePrefix) {
		return false
	}
	for _, r := range s[len(OrderCodePrefix):] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
