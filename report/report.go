// Package report builds a summary of all the analyses of a record.
package report

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/bioseq/bio"
	"bitbucket.org/Davydov/bioseq/codon"
	"bitbucket.org/Davydov/bioseq/orf"
	"bitbucket.org/Davydov/bioseq/sequence"
)

var log = logging.MustGetLogger("report")

// WindowStats summarizes GC percentage over the windows.
type WindowStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Report stores the results of the sequence analysis.
type Report struct {
	// Record is the analysed record.
	Record sequence.Record `json:"record"`
	// GeneticCode is the NCBI genetic code id used for translation.
	GeneticCode int `json:"geneticCode"`
	// Frequencies is the number of occurrences of every symbol.
	Frequencies map[string]int `json:"frequencies"`
	// GCContent is the (non-percentage) g + c/len*100 value.
	GCContent float64 `json:"gcContent"`
	// GCPercent is the percentage of G and C.
	GCPercent float64 `json:"gcPercent"`
	// Window is the window size for windowed values.
	Window int `json:"window"`
	// GCContentWindowed is GCContent computed in windows.
	GCContentWindowed []int `json:"gcContentWindowed"`
	// GCPercentWindowed is GCPercent computed in windows.
	GCPercentWindowed []float64 `json:"gcPercentWindowed"`
	// WindowStats is computed from GCPercentWindowed, it is nil if
	// the sequence is shorter than the window.
	WindowStats *WindowStats `json:"windowStats,omitempty"`
	// Frames are the translations of six reading frames.
	Frames sequence.Frames `json:"frames"`
	// Proteins are extracted from all six frames.
	Proteins []string `json:"proteins"`
	// CodonUsage is codon usage of the first forward frame.
	CodonUsage codon.Usage `json:"codonUsage"`
}

// New analyses the record and creates a report. If gc is nil, the
// standard genetic code is used.
func New(r sequence.Record, window int, gc *bio.GeneticCode) (*Report, error) {
	if gc == nil {
		gc = bio.Standard
	}
	rep := &Report{
		Record:      r,
		GeneticCode: gc.ID,
		Frequencies: make(map[string]int),
		GCContent:   r.GCContent(),
		GCPercent:   r.GCPercent(),
		Window:      window,
	}
	for s, n := range r.Frequencies() {
		rep.Frequencies[string(s)] = n
	}

	var err error
	rep.GCContentWindowed, err = r.GCContentWindowed(window)
	if err != nil {
		return nil, err
	}
	rep.GCPercentWindowed, err = r.GCPercentWindowed(window)
	if err != nil {
		return nil, err
	}
	rep.WindowStats = Stats(rep.GCPercentWindowed)

	rep.Frames, err = r.SixFramesCode(gc)
	if err != nil {
		return nil, err
	}
	rep.Proteins = orf.FromFrames(rep.Frames)

	rep.CodonUsage, err = codon.Count(r, 0)
	if err != nil {
		return nil, err
	}

	log.Debugf("%s: %d windows, %d proteins", r.Label(), len(rep.GCPercentWindowed), len(rep.Proteins))
	return rep, nil
}

// Stats computes summary statistics, nil is returned for no values.
func Stats(values []float64) *WindowStats {
	if len(values) == 0 {
		return nil
	}
	ws := &WindowStats{
		Mean: stat.Mean(values, nil),
		Min:  floats.Min(values),
		Max:  floats.Max(values),
	}
	if len(values) > 1 {
		ws.StdDev = stat.StdDev(values, nil)
	}
	return ws
}
