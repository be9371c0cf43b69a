package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPANValidation(t *testing.T) {
	tests := []struct {
		name  string
		pan   string
		valid bool
	}{
		{name: "lowercase input normalizes to valid", pan: "abcde1234f", valid: true},
		{name: "uppercase valid", pan: "ABCDE1234F", valid: true},
		{name: "four leading letters", pan: "ABCD1234F", valid: false},
		{name: "trailing digit instead of letter", pan: "ABCDE12345", valid: false},
		{name: "too long", pan: "ABCDE1234FX", valid: false},
		{name: "empty", pan: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPAN(NormalizePAN(tt.pan)))
		})
	}
}

func TestAadhaarValidation(t *testing.T) {
	tests := []struct {
		name    string
		aadhaar string
		valid   bool
	}{
		{name: "twelve digits", aadhaar: "123456789012", valid: true},
		{name: "padded with spaces trims to valid", aadhaar: "  123456789012  ", valid: true},
		{name: "too short", aadhaar: "12345", valid: false},
		{name: "thirteen digits", aadhaar: "1234567890123", valid: false},
		{name: "letters mixed in", aadhaar: "12345678901A", valid: false},
		{name: "empty", aadhaar: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidAadhaar(NormalizeAadhaar(tt.aadhaar)))
		})
	}
}

func TestNormalizePAN(t *testing.T) {
	assert.Equal(t, "ABCDE1234F", NormalizePAN("abcde1234f"))
}
