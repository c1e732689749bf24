package charconv

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding
// floating-point bit patterns.
func MustParse(s string, l Layout) Bits {
	b, err := Parse(s, l)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q, %v) failed: %v", s, l, err))
	}
	return b
}

// MustParseFloat is like [ParseFloat] but panics if the string cannot be
// parsed.
func MustParseFloat(s string, bitSize int) float64 {
	f, err := ParseFloat(s, bitSize)
	if err != nil {
		panic(fmt.Sprintf("MustParseFloat(%q, %v) failed: %v", s, bitSize, err))
	}
	return f
}
