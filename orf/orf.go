// Package orf extracts candidate proteins (open reading frames) from
// translated sequences.
package orf

import (
	"bitbucket.org/Davydov/bioseq/bio"
	"bitbucket.org/Davydov/bioseq/sequence"
)

// Extract reads proteins from a translated reading frame. Every start
// residue opens a new candidate, all open candidates grow with every
// residue, and a stop residue emits them in the order they were
// opened. Candidates without a stop residue are dropped.
func Extract(residues string) []string {
	var open [][]byte
	proteins := []string{}

	for i := 0; i < len(residues); i++ {
		aa := residues[i]
		switch aa {
		case bio.StopResidue:
			for _, p := range open {
				proteins = append(proteins, string(p))
			}
			open = open[:0]
		default:
			if aa == bio.StartResidue {
				open = append(open, make([]byte, 0, 16))
			}
			for j := range open {
				open[j] = append(open[j], aa)
			}
		}
	}
	return proteins
}

// FromFrames extracts proteins from all six frames. Proteins are
// returned in frame order, duplicates are kept.
func FromFrames(frames sequence.Frames) []string {
	proteins := []string{}
	for _, f := range frames {
		proteins = append(proteins, Extract(f)...)
	}
	return proteins
}

// Proteins translates all six frames of the record with the standard
// genetic code and extracts the proteins.
func Proteins(r sequence.Record) ([]string, error) {
	return ProteinsCode(r, bio.Standard)
}

// ProteinsCode is like Proteins but uses the given genetic code.
func ProteinsCode(r sequence.Record, gc *bio.GeneticCode) ([]string, error) {
	frames, err := r.SixFramesCode(gc)
	if err != nil {
		return nil, err
	}
	return FromFrames(frames), nil
}

// Unique removes repeated proteins keeping the first occurrence.
func Unique(proteins []string) []string {
	seen := make(map[string]bool, len(proteins))
	res := make([]string, 0, len(proteins))
	for _, p := range proteins {
		if seen[p] {
			continue
		}
		seen[p] = true
		res = append(res, p)
	}
	return res
}

// MinLength returns proteins which have at least n residues.
func MinLength(proteins []string, n int) []string {
	res := make([]string, 0, len(proteins))
	for _, p := range proteins {
		if len(p) >= n {
			res = append(res, p)
		}
	}
	return res
}
