package sequence

import (
	"fmt"
	"math"
	"strings"
)

// DefaultWindow is the default window size for windowed GC content.
const DefaultWindow = 20

// Frequencies returns the number of occurrences of every symbol.
func (r Record) Frequencies() map[byte]int {
	freq := make(map[byte]int, 4)
	for i := 0; i < len(r.symbols); i++ {
		freq[r.symbols[i]]++
	}
	return freq
}

// GCContent returns g + c/length*100. This is not the GC percentage
// (see GCPercent), the value is kept for compatibility with existing
// results. Zero is returned for an empty sequence.
func (r Record) GCContent() float64 {
	if len(r.symbols) == 0 {
		return 0
	}
	g := strings.Count(r.symbols, "G")
	c := strings.Count(r.symbols, "C")
	return float64(g) + float64(c)/float64(len(r.symbols))*100
}

// GCContentWindowed splits the sequence into non-overlapping windows
// of size k (the incomplete last window is ignored) and returns
// c + g/k*100 rounded half to even for every window. Like GCContent
// this is not a percentage.
func (r Record) GCContentWindowed(k int) ([]int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("window size must be positive: %d", k)
	}
	res := make([]int, 0, len(r.symbols)/k)
	for i := 0; i+k <= len(r.symbols); i += k {
		w := r.symbols[i : i+k]
		c := strings.Count(w, "C")
		g := strings.Count(w, "G")
		v := float64(c) + float64(g)/float64(len(w))*100
		res = append(res, int(math.RoundToEven(v)))
	}
	return res, nil
}

// GCPercent returns the percentage of G and C symbols.
func (r Record) GCPercent() float64 {
	return gcPercent(r.symbols)
}

// GCPercentWindowed returns GC percentage for every complete
// non-overlapping window of size k.
func (r Record) GCPercentWindowed(k int) ([]float64, error) {
	if k <= 0 {
		return nil, fmt.Errorf("window size must be positive: %d", k)
	}
	res := make([]float64, 0, len(r.symbols)/k)
	for i := 0; i+k <= len(r.symbols); i += k {
		res = append(res, gcPercent(r.symbols[i:i+k]))
	}
	return res, nil
}

func gcPercent(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	gc := strings.Count(s, "G") + strings.Count(s, "C")
	return float64(gc) / float64(len(s)) * 100
}
