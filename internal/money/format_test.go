package money

import "testing"

func TestFormatterGlyphs(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		amount   string
		currency string
		expected string
	}{
		{"50000", "BDT", "৳50000.00"},
		{"99.9", "USD", "$99.90"},
		{"10", "EUR", "10.00 EUR"},
		{"10", "GBP", "10.00 GBP"},
	}

	for _, tt := range tests {
		if got := f.Format(MustParse(tt.amount), tt.currency); got != tt.expected {
			t.Errorf("Format(%s, %s) = %s, want %s", tt.amount, tt.currency, got, tt.expected)
		}
	}
}
