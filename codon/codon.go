// Package codon computes codon usage of a sequence record.
package codon

import (
	"fmt"
	"strings"

	"bitbucket.org/Davydov/bioseq/sequence"
)

var (
	alphabet  = [...]byte{'T', 'C', 'A', 'G'}
	rAlphabet = map[byte]int{'T': 0, 'C': 1, 'A': 2, 'G': 3, 'U': 0}
)

// NCodon is the number of codons.
const NCodon = 64

// Usage is the number of occurrences of every codon (DNA letters).
type Usage map[string]int

// Frequency stores codon frequencies in the order of All.
type Frequency []float64

// All returns all the codons in TCAG order.
func All() []string {
	codons := make([]string, NCodon)
	for i := range codons {
		codons[i] = string([]byte{alphabet[i/16], alphabet[i/4%4], alphabet[i%4]})
	}
	return codons
}

// index returns the position of the codon in All or -1.
func index(codon string) int {
	if len(codon) != 3 {
		return -1
	}
	i := 0
	for k := 0; k < 3; k++ {
		l, ok := rAlphabet[codon[k]]
		if !ok {
			return -1
		}
		i = i*4 + l
	}
	return i
}

// Count counts codons of the frame starting at offset. RNA codons
// are counted as DNA codons.
func Count(r sequence.Record, offset int) (Usage, error) {
	if offset < 0 {
		return nil, fmt.Errorf("negative frame offset: %d", offset)
	}
	s := r.Symbols()
	u := make(Usage)
	for pos := offset; pos+3 <= len(s); pos += 3 {
		codon := strings.ReplaceAll(s[pos:pos+3], "U", "T")
		u[codon]++
	}
	return u, nil
}

// Total returns the number of counted codons.
func (u Usage) Total() (n int) {
	for _, c := range u {
		n += c
	}
	return
}

// Frequency converts counts to frequencies. Codons with unknown
// letters are ignored. All frequencies are zero for an empty usage.
func (u Usage) Frequency() Frequency {
	cf := make(Frequency, NCodon)
	sum := 0
	for codon, n := range u {
		i := index(codon)
		if i < 0 {
			continue
		}
		cf[i] += float64(n)
		sum += n
	}
	if sum == 0 {
		return cf
	}
	for i := range cf {
		cf[i] /= float64(sum)
	}
	return cf
}

func (cf Frequency) String() string {
	var b strings.Builder
	b.WriteString("<CodonFrequency:")
	for i, codon := range All() {
		if i >= len(cf) {
			break
		}
		fmt.Fprintf(&b, " %v: %v,", codon, cf[i])
	}
	return strings.TrimSuffix(b.String(), ",") + ">"
}
