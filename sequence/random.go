package sequence

import (
	"fmt"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultRandomLength is the default length of random sequences.
const DefaultRandomLength = 42

// Random generates a new record of the given length with symbols
// drawn uniformly from the alphabet of the kind. If src is nil, a
// time based source is used.
func Random(length int, kind Kind, src rand.Source) (Record, error) {
	return RandomGC(length, kind, 0.5, src)
}

// RandomGC generates a new random record where G and C are drawn with
// total probability gcBias and A and T (U) with 1-gcBias.
func RandomGC(length int, kind Kind, gcBias float64, src rand.Source) (Record, error) {
	if length < 0 {
		return Record{}, fmt.Errorf("negative sequence length: %d", length)
	}
	if !(gcBias >= 0 && gcBias <= 1) {
		return Record{}, fmt.Errorf("gc bias out of [0; 1]: %v", gcBias)
	}
	if src == nil {
		src = rand.NewPCG(uint64(time.Now().UnixNano()), 0)
	}

	alphabet := kind.Alphabet()
	weights := make([]float64, len(alphabet))
	for i := range weights {
		switch alphabet[i] {
		case 'G', 'C':
			weights[i] = gcBias / 2
		default:
			weights[i] = (1 - gcBias) / 2
		}
	}
	cat := distuv.NewCategorical(weights, src)

	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[int(cat.Rand())]
	}
	return New(string(b), kind, RandomLabel)
}
