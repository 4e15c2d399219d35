package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderCode(t *testing.T) {
	code, err := NewOrderCode()
	require.NoError(t, err)

	assert.Len(t, code, len(OrderCodePrefix)+OrderCodeDigits)
	assert.True(t, IsOrderCode(code), "generated code should satisfy IsOrderCode: %s", code)
}

func TestNewOrderCode_Distribution(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := NewOrderCode()
		require.NoError(t, err)
		seen[code] = true
	}

	// With a million possible codes, 200 draws should be close to unique.
	assert.Greater(t, len(seen), 190)
}

func TestIsOrderCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid code", "ANI123456", true},
		{"lowercase prefix", "ani123456", false},
		{"too short", "ANI12345", false},
		{"too long", "ANI1234567", false},
		{"non-digit suffix", "ANI12345X", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOrderCode(tt.input))
		})
	}
}
