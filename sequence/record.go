// Package sequence implements an immutable nucleotide sequence record
// and the analyses derived from it: composition, transcription,
// reverse complement and translation.
package sequence

import (
	"encoding/json"
	"fmt"
	"strings"

	"bitbucket.org/Davydov/bioseq/bio"
)

// Kind is a sequence type.
type Kind int

const (
	// DNA is a deoxyribonucleic acid sequence.
	DNA Kind = iota
	// RNA is a ribonucleic acid sequence.
	RNA
)

const (
	// DefaultLabel is used when no label is given.
	DefaultLabel = "NoLabel"
	// RandomLabel is the label of randomly generated records.
	RandomLabel = "Random Sequence"
)

func (k Kind) String() string {
	switch k {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Alphabet returns the alphabet of valid symbols for the kind.
func (k Kind) Alphabet() bio.Alphabet {
	if k == RNA {
		return bio.RNA
	}
	return bio.DNA
}

// ParseKind converts a case-insensitive kind name to Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(s) {
	case "DNA":
		return DNA, nil
	case "RNA":
		return RNA, nil
	}
	return DNA, fmt.Errorf("unknown sequence kind: %s", s)
}

// Record is a validated nucleotide sequence with a label. Records are
// values, they are never modified after construction.
type Record struct {
	symbols string
	kind    Kind
	label   string
	valid   bool
}

// New creates a record. Symbols are converted to capital letters and
// must belong to the alphabet of the kind, otherwise
// *ValidationError is returned.
func New(symbols string, kind Kind, label string) (Record, error) {
	if kind != DNA && kind != RNA {
		return Record{}, fmt.Errorf("unknown sequence kind: %v", kind)
	}
	symbols = strings.ToUpper(symbols)
	if pos := kind.Alphabet().Invalid(symbols); pos >= 0 {
		return Record{}, &ValidationError{
			Kind:     kind,
			Sequence: symbols,
			Symbol:   symbols[pos],
			Pos:      pos,
		}
	}
	return Record{
		symbols: symbols,
		kind:    kind,
		label:   label,
		valid:   true,
	}, nil
}

// Symbols returns the sequence.
func (r Record) Symbols() string { return r.symbols }

// Kind returns the sequence kind.
func (r Record) Kind() Kind { return r.kind }

// Label returns the record label.
func (r Record) Label() string { return r.label }

// Len returns the sequence length.
func (r Record) Len() int { return len(r.symbols) }

// Valid is true for every record returned by New; only the zero
// Record is invalid.
func (r Record) Valid() bool { return r.valid }

// Describe returns full record information.
func (r Record) Describe() string {
	return fmt.Sprintf("-Label- %s\n-Sequence- %s\n-Type- %s\n-Length-%d\n",
		r.label, r.symbols, r.kind, len(r.symbols))
}

// String returns the record in FASTA format.
func (r Record) String() string {
	return bio.Sequence{Name: r.label, Sequence: r.symbols}.String()
}

type recordJSON struct {
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Sequence string `json:"sequence"`
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Label:    r.label,
		Kind:     r.kind.String(),
		Sequence: r.symbols,
	})
}

// FromJSON decodes a record encoded by MarshalJSON, the record is
// validated again.
func FromJSON(data []byte) (Record, error) {
	var rj recordJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return Record{}, err
	}
	kind, err := ParseKind(rj.Kind)
	if err != nil {
		return Record{}, err
	}
	return New(rj.Sequence, kind, rj.Label)
}

// UnmarshalJSON implements json.Unmarshaler. The record is replaced
// as a whole and only if the stored sequence is valid.
func (r *Record) UnmarshalJSON(data []byte) error {
	rec, err := FromJSON(data)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

var colors = map[byte]string{
	'A': "\033[92m",
	'C': "\033[94m",
	'G': "\033[93m",
	'T': "\033[91m",
	'U': "\033[91m",
}

const colorReset = "\033[0;0m"

// Colored returns the sequence with ANSI terminal colors.
func (r Record) Colored() string {
	var b strings.Builder
	for i := 0; i < len(r.symbols); i++ {
		c, ok := colors[r.symbols[i]]
		if !ok {
			c = colorReset
		}
		b.WriteString(c)
		b.WriteByte(r.symbols[i])
	}
	b.WriteString(colorReset)
	return b.String()
}
