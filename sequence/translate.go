package sequence

import (
	"fmt"

	"bitbucket.org/Davydov/bioseq/bio"
)

// Frames stores the translations of the six reading frames: three
// forward frames followed by three frames of the reverse complement.
type Frames [6]string

// Translate translates the sequence starting at offset using the
// standard genetic code.
func (r Record) Translate(offset int) (string, error) {
	return r.TranslateCode(bio.Standard, offset)
}

// TranslateCode translates non-overlapping codons starting at offset,
// an incomplete last codon is ignored. Translation stops at the
// first codon absent from the genetic code and *TranslationError is
// returned together with the residues translated so far.
func (r Record) TranslateCode(gc *bio.GeneticCode, offset int) (string, error) {
	if offset < 0 {
		return "", fmt.Errorf("negative frame offset: %d", offset)
	}
	n := 0
	if len(r.symbols) > offset {
		n = (len(r.symbols) - offset) / 3
	}
	res := make([]byte, 0, n)
	for pos := offset; pos+3 <= len(r.symbols); pos += 3 {
		codon := r.symbols[pos : pos+3]
		aa, ok := gc.Residue(codon)
		if !ok {
			return string(res), &TranslationError{Codon: codon, Pos: pos}
		}
		res = append(res, aa)
	}
	return string(res), nil
}

// SixFrames translates all six reading frames with the standard
// genetic code.
func (r Record) SixFrames() (Frames, error) {
	return r.SixFramesCode(bio.Standard)
}

// SixFramesCode translates all six reading frames. Reverse frames are
// translated from the reverse complement record.
func (r Record) SixFramesCode(gc *bio.GeneticCode) (frames Frames, err error) {
	for i := 0; i < 3; i++ {
		frames[i], err = r.TranslateCode(gc, i)
		if err != nil {
			return frames, err
		}
	}
	rc, err := New(r.ReverseComplement(), r.kind, DefaultLabel)
	if err != nil {
		return frames, err
	}
	for i := 0; i < 3; i++ {
		frames[3+i], err = rc.TranslateCode(gc, i)
		if err != nil {
			return frames, err
		}
	}
	return frames, nil
}
