package sequence

import "strings"

// Transcribe returns the sequence with every T replaced by U.
func (r Record) Transcribe() string {
	return strings.ReplaceAll(r.symbols, "T", "U")
}

// ReverseComplement returns the reverse complement of the sequence.
// G pairs with C. In DNA records A pairs with T, in RNA records A pairs
// with U, so the RNA complement stays RNA. Any other symbol (T in an
// RNA record, U in a DNA one) is kept as is.
func (r Record) ReverseComplement() string {
	at := byte('T')
	if r.kind == RNA {
		at = 'U'
	}
	var rc strings.Builder
	rc.Grow(len(r.symbols))
	for i := len(r.symbols) - 1; i >= 0; i-- {
		switch c := r.symbols[i]; c {
		case 'A':
			rc.WriteByte(at)
		case at:
			rc.WriteByte('A')
		case 'G':
			rc.WriteByte('C')
		case 'C':
			rc.WriteByte('G')
		default:
			rc.WriteByte(c)
		}
	}
	return rc.String()
}
