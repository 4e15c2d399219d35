package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskContact(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ten digit phone reveals four", "0123456789", "0123******"},
		{"eleven digit phone reveals five", "09000000000", "09000******"},
		{"short value unchanged", "0123", "0123"},
		{"single char unchanged", "a", "a"},
		{"empty unchanged", "", ""},
		{"five chars reveals two", "01234", "01***"},
		{"social link", "zalo.me/abcdef", "zalo.m********"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskContact(tt.input))
		})
	}
}

func TestMaskAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"three segments reveals two", "12 Le Loi, Q1, HCMC", "12 Le Loi, Q1, ***"},
		{"two segments reveals one", "12 Le Loi, HCMC", "12 Le Loi, ***"},
		{"one segment reveals itself", "12 Le Loi", "12 Le Loi, ***"},
		{"four segments reveals two", "12 Le Loi, P7, Q1, HCMC", "12 Le Loi, P7, ***"},
		{"five segments reveals three", "a, b, c, d, e", "a, b, c, ***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskAddress(tt.input))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "u***@example.com", MaskEmail("user@example.com"))
	assert.Equal(t, "***", MaskEmail("not-an-email"))
}
