package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "1200.50", "1200.5"},
		{"dollar sign", "$1200.50", "1200.5"},
		{"commas", "1,200", "1200"},
		{"dollar and commas", "$1,200,000.25", "1200000.25"},
		{"surrounding space", "  42 ", "42"},
		{"empty", "", "0"},
		{"garbage", "abc", "0"},
		{"negative clamps to zero", "-50", "0"},
		{"zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.input).String())
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain", "3", 3},
		{"empty", "0", 0},
		{"blank", "", 0},
		{"garbage", "two", 0},
		{"negative clamps to zero", "-2", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCount(tt.input))
		})
	}
}
