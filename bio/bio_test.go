package bio

import (
	"strings"
	"testing"
)

const fastaData = `>seq1 first sequence
ATGGCC
tttTAA
>seq2
ACGU
`

func TestStandardCode(tst *testing.T) {
	if len(Standard.Map) != 64 {
		tst.Fatal("wrong number of codons:", len(Standard.Map))
	}
	stops := 0
	for _, aa := range Standard.Map {
		if aa == StopResidue {
			stops++
		}
	}
	if stops != 3 {
		tst.Error("wrong number of stop codons:", stops)
	}
	checks := map[string]byte{
		"ATG": 'M', "TGG": 'W', "TAA": '_', "TAG": '_', "TGA": '_',
		"TTT": 'F', "GGG": 'G', "AGA": 'R', "CAT": 'H', "ATA": 'I',
	}
	for codon, aa := range checks {
		if Standard.Map[codon] != aa {
			tst.Errorf("%s: expected %c, got %c", codon, aa, Standard.Map[codon])
		}
	}
	if !Standard.Starts["ATG"] || Standard.Starts["TGG"] {
		tst.Error("wrong start codons", Standard.Starts)
	}
}

func TestGeneticCodes(tst *testing.T) {
	mito, ok := GeneticCodes[2]
	if !ok {
		tst.Fatal("no vertebrate mitochondrial code")
	}
	if mito.Map["TGA"] != 'W' || mito.Map["AGA"] != StopResidue || mito.Map["ATA"] != 'M' {
		tst.Error("wrong mitochondrial code")
	}
	if _, ok := GeneticCodes[11]; !ok {
		tst.Error("no bacterial code")
	}
}

func TestResidue(tst *testing.T) {
	for _, codon := range []string{"AUG", "aug", "atg"} {
		if aa, ok := Standard.Residue(codon); !ok || aa != 'M' {
			tst.Errorf("%s: expected M, got %c (%v)", codon, aa, ok)
		}
	}
	if _, ok := Standard.Residue("ANG"); ok {
		tst.Error("ambiguous codon translated")
	}
	if !Standard.IsStopCodon("UAA") || Standard.IsStopCodon("ATG") {
		tst.Error("wrong stop codon test")
	}
}

func TestAlphabet(tst *testing.T) {
	if DNA.Invalid("ACGTACGT") != -1 {
		tst.Error("valid DNA rejected")
	}
	if pos := DNA.Invalid("ACGU"); pos != 3 {
		tst.Error("expected invalid position 3, got", pos)
	}
	if RNA.Contains('T') || !RNA.Contains('U') {
		tst.Error("wrong RNA alphabet")
	}
}

func TestReadFasta(tst *testing.T) {
	seqs, err := ReadFasta(strings.NewReader(fastaData))
	if err != nil {
		tst.Fatal("Error reading fasta:", err)
	}
	if len(seqs) != 2 {
		tst.Fatal("expected 2 sequences, got", len(seqs))
	}
	if seqs[0].Name != "seq1" || seqs[0].Sequence != "ATGGCCTTTTAA" {
		tst.Error("wrong first sequence:", seqs[0])
	}
	if seqs[1].Name != "seq2" || seqs[1].Sequence != "ACGU" {
		tst.Error("wrong second sequence:", seqs[1])
	}
}

func TestWrap(tst *testing.T) {
	if w := Wrap("ACGTACGTAC", 4); w != "ACGT\nACGT\nAC\n" {
		tst.Errorf("wrong wrap: %q", w)
	}
	if w := Wrap("", 4); w != "" {
		tst.Errorf("wrong empty wrap: %q", w)
	}
	s := Sequences{{Name: "a", Sequence: "AC"}, {Name: "b", Sequence: "GT"}}
	if s.String() != ">a\nAC\n>b\nGT" {
		tst.Errorf("wrong fasta: %q", s.String())
	}
}
