package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"bitbucket.org/Davydov/bioseq/bio"
	"bitbucket.org/Davydov/bioseq/gcplot"
	"bitbucket.org/Davydov/bioseq/orf"
	"bitbucket.org/Davydov/bioseq/report"
	"bitbucket.org/Davydov/bioseq/sequence"
	"bitbucket.org/Davydov/bioseq/store"
)

// frameNames are the names of frames in sequence.Frames order.
var frameNames = [...]string{"+1", "+2", "+3", "-1", "-2", "-3"}

func runInfo(arg string, kind sequence.Kind) error {
	recs, err := records(arg, kind)
	if err != nil {
		return err
	}
	for _, r := range recs {
		fmt.Print(r.Describe())
		freq := r.Frequencies()
		symbols := make([]string, 0, len(freq))
		for s := range freq {
			symbols = append(symbols, string(s))
		}
		sort.Strings(symbols)
		for _, s := range symbols {
			fmt.Printf("%s: %d\n", s, freq[s[0]])
		}
		fmt.Printf("GC content: %.3f\n", r.GCContent())
		fmt.Printf("GC percent: %.3f\n", r.GCPercent())
		fmt.Printf("Transcript: %s\n", r.Transcribe())
		fmt.Printf("Reverse complement: %s\n", r.ReverseComplement())
	}
	return nil
}

func runColored(arg string, kind sequence.Kind) error {
	recs, err := records(arg, kind)
	if err != nil {
		return err
	}
	for _, r := range recs {
		fmt.Println(">" + r.Label())
		fmt.Println(r.Colored())
	}
	return nil
}

func runRandom(kind sequence.Kind) error {
	if *randomSeed == -1 {
		*randomSeed = time.Now().UnixNano()
		log.Debug("Random seed from time")
	}
	log.Infof("Random seed=%v", *randomSeed)

	src := rand.NewPCG(uint64(*randomSeed), 0)
	r, err := sequence.RandomGC(*randomLength, kind, *randomGC, src)
	if err != nil {
		return err
	}
	fmt.Print(r)

	if *randomDB != "" {
		s, err := store.Open(*randomDB)
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.SaveRecord(r); err != nil {
			return err
		}
		log.Noticef("Saved %s to %s", r.Label(), *randomDB)
	}
	return nil
}

// plotName returns the plot file name for the i-th of n records.
func plotName(path string, i, n int) string {
	if n == 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, ext), i+1, ext)
}

func runGC(arg string, kind sequence.Kind) error {
	recs, err := records(arg, kind)
	if err != nil {
		return err
	}
	for i, r := range recs {
		content, err := r.GCContentWindowed(*gcWindow)
		if err != nil {
			return err
		}
		percent, err := r.GCPercentWindowed(*gcWindow)
		if err != nil {
			return err
		}
		if len(percent) == 0 {
			log.Warningf("%s is shorter than the window (%d)", r.Label(), *gcWindow)
		}
		fmt.Printf(">%s\n", r.Label())
		fmt.Println("start\tgc_content\tgc_percent")
		for j := range percent {
			fmt.Printf("%d\t%d\t%.3f\n", j*(*gcWindow), content[j], percent[j])
		}

		if *gcPlotF != "" && len(percent) > 0 {
			p, err := gcplot.New(percent, *gcWindow, r.Label())
			if err != nil {
				return err
			}
			fn := plotName(*gcPlotF, i, len(recs))
			if err := gcplot.Save(p, fn); err != nil {
				return fmt.Errorf("error saving plot: %w", err)
			}
			log.Infof("Plot saved to %s", fn)
		}
	}
	return nil
}

func runTranslate(arg string, kind sequence.Kind, gcode *bio.GeneticCode) error {
	recs, err := records(arg, kind)
	if err != nil {
		return err
	}
	for _, r := range recs {
		fmt.Printf(">%s\n", r.Label())
		if *translateFrame >= 0 {
			p, err := r.TranslateCode(gcode, *translateFrame)
			if err != nil {
				return err
			}
			fmt.Println(p)
			continue
		}
		frames, err := r.SixFramesCode(gcode)
		if err != nil {
			return err
		}
		for i, f := range frames {
			fmt.Printf("%s\t%s\n", frameNames[i], f)
		}
	}
	return nil
}

func runProteins(arg string, kind sequence.Kind, gcode *bio.GeneticCode) error {
	recs, err := records(arg, kind)
	if err != nil {
		return err
	}
	var out bio.Sequences
	for _, r := range recs {
		proteins, err := orf.ProteinsCode(r, gcode)
		if err != nil {
			return err
		}
		n := len(proteins)
		if *proteinsUnique {
			proteins = orf.Unique(proteins)
		}
		proteins = orf.MinLength(proteins, *proteinsMinLen)
		log.Infof("%s: %d proteins, %d reported", r.Label(), n, len(proteins))
		for i, p := range proteins {
			out = append(out, bio.Sequence{
				Name:     fmt.Sprintf("%s_orf%d", r.Label(), i+1),
				Sequence: p,
			})
		}
	}
	if len(out) > 0 {
		fmt.Println(out)
	}
	return nil
}

func runReport(arg string, kind sequence.Kind, gcode *bio.GeneticCode) error {
	recs, err := records(arg, kind)
	if err != nil {
		return err
	}

	var s *store.Store
	if *reportDB != "" {
		s, err = store.Open(*reportDB)
		if err != nil {
			return err
		}
		defer s.Close()
	}

	reports := make([]*report.Report, 0, len(recs))
	for _, r := range recs {
		rep, err := report.New(r, *reportWindow, gcode)
		if err != nil {
			return fmt.Errorf("%s: %w", r.Label(), err)
		}
		reports = append(reports, rep)
		if s != nil {
			if err := s.SaveRecord(r); err != nil {
				return err
			}
			if err := s.SaveReport(rep); err != nil {
				return err
			}
		}
	}

	j, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	if *reportJSONF == "" {
		fmt.Println(string(j))
		return nil
	}
	return os.WriteFile(*reportJSONF, j, 0644)
}

func runShow() error {
	s, err := store.Open(*showDB)
	if err != nil {
		return err
	}
	defer s.Close()

	if *showLabel == "" {
		labels, err := s.Labels()
		if err != nil {
			return err
		}
		sort.Strings(labels)
		for _, l := range labels {
			fmt.Println(l)
		}
		return nil
	}

	rep, err := s.LoadReport(*showLabel)
	if err != nil {
		return err
	}
	if rep != nil {
		j, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(j))
		return nil
	}

	r, ok, err := s.LoadRecord(*showLabel)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no record with label %s", *showLabel)
	}
	fmt.Print(r.Describe())
	return nil
}
