// Package bio provides the static biological data used by bioseq:
// nucleotide alphabets, genetic codes and FASTA input/output.
package bio

import (
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("bio")

// Alphabet is a set of valid symbols (capital letters).
type Alphabet string

var (
	// DNA is the nucleotide alphabet of DNA sequences.
	DNA = Alphabet("ACGT")
	// RNA is the nucleotide alphabet of RNA sequences.
	RNA = Alphabet("ACGU")
)

// Contains tests if the symbol belongs to the alphabet.
func (a Alphabet) Contains(b byte) bool {
	return strings.IndexByte(string(a), b) >= 0
}

// Invalid returns the position of the first symbol which doesn't
// belong to the alphabet or -1 if all the symbols are valid.
func (a Alphabet) Invalid(s string) int {
	for i := 0; i < len(s); i++ {
		if !a.Contains(s[i]) {
			return i
		}
	}
	return -1
}

// Sequence is a type which is intended for storing nucleotide or
// protein sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences, e.g. all records of a FASTA file.
type Sequences []Sequence

// ReadFasta reads FASTA sequences from a reader. Letters are
// converted to capital letters, no validation is performed.
func ReadFasta(rd io.Reader) (seqs Sequences, err error) {
	seqs = make(Sequences, 0, 10)
	r := fasta.NewReader(rd, linear.NewSeq("", nil, alphabet.DNA))
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ls, ok := s.(*linear.Seq)
		if !ok {
			continue
		}
		seq := Sequence{
			Name:     s.Name(),
			Sequence: strings.ToUpper(string(ls.Seq)),
		}
		log.Debugf("read %s (%d symbols)", seq.Name, len(seq.Sequence))
		seqs = append(seqs, seq)
	}
	return seqs, nil
}

// Wrap inputs a string and wraps it so string length is n characters
// or less.
func Wrap(seq string, n int) string {
	var b strings.Builder
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		b.WriteString(seq[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns a sequence in FASTA format.
func (seq Sequence) String() string {
	return ">" + seq.Name + "\n" + Wrap(seq.Sequence, 80)
}

// String returns sequences in FASTA format.
func (seqs Sequences) String() string {
	var b strings.Builder
	for _, seq := range seqs {
		b.WriteString(seq.String())
	}
	return strings.TrimSuffix(b.String(), "\n")
}
