package money

// BaseCurrency is the currency every aggregation is performed in.
const BaseCurrency = "BDT"

// Formatter renders amounts for a currency. It is an explicit value passed
// to callers instead of process-global formatting state, so independent
// requests cannot interfere with each other's output.
type Formatter struct {
	glyphs map[string]string
}

// NewFormatter returns a formatter with the recognized currency glyphs.
func NewFormatter() Formatter {
	return Formatter{
		glyphs: map[string]string{
			"BDT": "৳",
			"USD": "$",
		},
	}
}

// Format renders an amount for display. Currencies with a known glyph render
// as "<glyph><amount>"; all others as "<amount> <CODE>".
func (f Formatter) Format(m Money, currency string) string {
	if glyph, ok := f.glyphs[currency]; ok {
		return glyph + m.DisplayString()
	}
	return m.DisplayString() + " " + currency
}
