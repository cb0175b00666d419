package sequence

import "fmt"

// ValidationError is returned when a sequence contains a symbol
// outside of the alphabet of its kind.
type ValidationError struct {
	Kind     Kind
	Sequence string
	// Symbol is the first offending symbol, Pos is its position.
	Symbol byte
	Pos    int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("incorrect %v sequence: unexpected symbol %q at position %d",
		e.Kind, e.Symbol, e.Pos)
}

// TranslationError is returned when a codon is missing from the
// genetic code, e.g. contains an ambiguous symbol.
type TranslationError struct {
	Codon string
	// Pos is the position of the codon in the sequence.
	Pos int
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("unknown codon %s at position %d", e.Codon, e.Pos)
}
