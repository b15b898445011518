package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{7, "Seven"},
		{15, "Fifteen"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{205, "Two Hundred Five"},
		{5000, "Five Thousand"},
		{12345, "Twelve Thousand Three Hundred Forty Five"},
		{100000, "One Lakh"},
		{2550000, "Twenty Five Lakh Fifty Thousand"},
		{10000000, "One Crore"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NumberToWords(tt.in), "input %d", tt.in)
	}
}

func TestNumberToCurrencyWords(t *testing.T) {
	assert.Equal(t, "Zero Rupees Only", NumberToCurrencyWords(0))
	assert.Equal(t, "Five Thousand Rupees Only", NumberToCurrencyWords(5000))
	assert.Equal(t, "Fifty Paise Only", NumberToCurrencyWords(0.50))
	assert.Equal(t,
		"Three Thousand Rupees and Twenty Five Paise Only",
		NumberToCurrencyWords(3000.25))
}
