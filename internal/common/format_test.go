package common

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "$0"},
		{500, "$500"},
		{5000, "$5,000"},
		{5_000_000, "$5,000,000"},
		{1_234_567_890, "$1,234,567,890"},
		{-2500, "-$2,500"},
		{999.6, "$1,000"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.input); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{1_000_000.99, "$1,000,000.99"},
		{-42.25, "-$42.25"},
		{999.999, "$1,000.00"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.input); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
