package bio

import "fmt"

const (
	// StopResidue marks a stop codon in translated sequences.
	StopResidue = '_'
	// StartResidue is the residue which opens a reading frame.
	StartResidue = 'M'
)

// codonOrder is the order of bases used by NCBI genetic code strings.
const codonOrder = "TCAG"

// GeneticCode is a codon table. Codons are capital DNA letters,
// residues are capital letters, stop codons are StopResidue.
type GeneticCode struct {
	ID        int
	Name      string
	ShortName string
	// Map is codon to residue mapping.
	Map map[string]byte
	// Starts is the set of codons which can initiate translation.
	Starts map[string]bool
}

// GeneticCodes is all the genetic codes available with NCBI ids as keys.
var GeneticCodes = map[int]*GeneticCode{}

// Standard is the standard genetic code (NCBI id 1).
var Standard *GeneticCode

func init() {
	for _, gc := range []*GeneticCode{
		newGeneticCode(1,
			"Standard",
			"SGC0",
			"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"---M------**--*----M---------------M----------------------------"),
		newGeneticCode(2,
			"Vertebrate Mitochondrial",
			"SGC1",
			"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG",
			"----------**--------------------MMMM----------**---M------------"),
		newGeneticCode(11,
			"Bacterial, Archaeal and Plant Plastid",
			"",
			"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"---M------**--*----M------------MMMM---------------M------------"),
	} {
		GeneticCodes[gc.ID] = gc
	}
	Standard = GeneticCodes[1]
}

// newGeneticCode creates a genetic code from NCBI strings. ncbieaa has
// a residue for every codon in TCAG order, '*' is a stop codon;
// sncbieaa marks start codons with 'M'.
func newGeneticCode(id int, name, shortName, ncbieaa, sncbieaa string) *GeneticCode {
	if len(ncbieaa) != 64 || len(sncbieaa) != 64 {
		panic(fmt.Sprintf("genetic code %d: wrong table length", id))
	}
	gc := &GeneticCode{
		ID:        id,
		Name:      name,
		ShortName: shortName,
		Map:       make(map[string]byte, 64),
		Starts:    make(map[string]bool),
	}
	for i := 0; i < 64; i++ {
		codon := string([]byte{
			codonOrder[i/16],
			codonOrder[(i/4)%4],
			codonOrder[i%4],
		})
		aa := ncbieaa[i]
		if aa == '*' {
			aa = StopResidue
		}
		gc.Map[codon] = aa
		if sncbieaa[i] == 'M' {
			gc.Starts[codon] = true
		}
	}
	return gc
}

// Residue returns the residue encoded by the codon. Lower case
// letters and RNA codons are accepted.
func (gc *GeneticCode) Residue(codon string) (byte, bool) {
	aa, ok := gc.Map[toDNACodon(codon)]
	return aa, ok
}

// IsStopCodon tests if the codon is a stop codon.
func (gc *GeneticCode) IsStopCodon(codon string) bool {
	aa, ok := gc.Residue(codon)
	return ok && aa == StopResidue
}

func (gc *GeneticCode) String() string {
	return fmt.Sprintf("<GC: Id=%d, Name=\"%s\">", gc.ID, gc.Name)
}

// toDNACodon converts a codon to capital DNA letters.
func toDNACodon(codon string) string {
	b := []byte(codon)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c == 'U' {
			c = 'T'
		}
		b[i] = c
	}
	return string(b)
}
