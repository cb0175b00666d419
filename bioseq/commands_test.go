package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"bitbucket.org/Davydov/bioseq/bio"
	"bitbucket.org/Davydov/bioseq/sequence"
)

func TestPlotName(tst *testing.T) {
	cases := []struct {
		path     string
		i, n     int
		expected string
	}{
		{"gc.svg", 0, 1, "gc.svg"},
		{"gc.svg", 0, 3, "gc_1.svg"},
		{"out/gc.png", 2, 3, "out/gc_3.png"},
		{"gc", 1, 2, "gc_2"},
	}
	for _, c := range cases {
		if name := plotName(c.path, c.i, c.n); name != c.expected {
			tst.Errorf("expected %s, got %s", c.expected, name)
		}
	}
}

func TestFrameNames(tst *testing.T) {
	if len(frameNames) != 6 || frameNames[0] != "+1" || frameNames[3] != "-1" {
		tst.Error("wrong frame names:", frameNames)
	}
}

// setInput points the --in and --label flags to the given values for
// the duration of the test.
func setInput(tst *testing.T, in, lbl string) {
	tst.Helper()
	oldIn, oldLabel := *inF, *label
	*inF, *label = in, lbl
	tst.Cleanup(func() { *inF, *label = oldIn, oldLabel })
}

// writeFasta writes a file to a temporary directory and returns its path.
func writeFasta(tst *testing.T, data string) string {
	tst.Helper()
	fn := filepath.Join(tst.TempDir(), "in.fst")
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		tst.Fatal("Error writing fasta:", err)
	}
	return fn
}

// captureStdout returns everything f writes to the standard output.
func captureStdout(tst *testing.T, f func() error) (string, error) {
	tst.Helper()
	rd, wr, err := os.Pipe()
	if err != nil {
		tst.Fatal(err)
	}
	stdout := os.Stdout
	os.Stdout = wr
	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(rd)
		done <- string(b)
	}()
	ferr := f()
	os.Stdout = stdout
	wr.Close()
	return <-done, ferr
}

func TestRecords(tst *testing.T) {
	cases := []struct {
		name    string
		fasta   string
		noFile  bool
		arg     string
		labels  []string
		invalid bool
		fail    bool
	}{
		{name: "argument", noFile: true, arg: "ATGC", labels: []string{"cmd"}},
		{name: "fasta", fasta: ">g1\nATGGCCTAA\n>g2\nacgt\n", labels: []string{"g1", "g2"}},
		{name: "invalid symbol", fasta: ">g1\nATGC\n>bad\nATXG\n", invalid: true, fail: true},
		{name: "empty file", fasta: "", fail: true},
		{name: "no sequence", noFile: true, arg: "", fail: true},
		{name: "invalid argument", noFile: true, arg: "AUG", invalid: true, fail: true},
	}
	for _, c := range cases {
		in := ""
		if !c.noFile {
			in = writeFasta(tst, c.fasta)
		}
		setInput(tst, in, "cmd")

		recs, err := records(c.arg, sequence.DNA)
		if c.fail {
			if err == nil {
				tst.Errorf("%s: expected error, got %v", c.name, recs)
			}
			var verr *sequence.ValidationError
			if c.invalid && !errors.As(err, &verr) {
				tst.Errorf("%s: expected ValidationError, got %v", c.name, err)
			}
			continue
		}
		if err != nil {
			tst.Errorf("%s: unexpected error: %v", c.name, err)
			continue
		}
		if len(recs) != len(c.labels) {
			tst.Errorf("%s: expected %d records, got %d", c.name, len(c.labels), len(recs))
			continue
		}
		for i, r := range recs {
			if r.Label() != c.labels[i] || !r.Valid() {
				tst.Errorf("%s: wrong record %d: %v", c.name, i, r)
			}
		}
	}
}

func TestRecordsUppercase(tst *testing.T) {
	setInput(tst, writeFasta(tst, ">g\nacgt\n"), "")
	recs, err := records("", sequence.DNA)
	if err != nil {
		tst.Fatal(err)
	}
	if recs[0].Symbols() != "ACGT" {
		tst.Error("sequence was not uppercased:", recs[0].Symbols())
	}
}

func TestRunProteins(tst *testing.T) {
	setInput(tst, writeFasta(tst, ">g1\nATGGCCTAA\n"), "")

	out, err := captureStdout(tst, func() error {
		return runProteins("", sequence.DNA, bio.Standard)
	})
	if err != nil {
		tst.Fatal("Error extracting proteins:", err)
	}
	if out != ">g1_orf1\nMA\n" {
		tst.Errorf("wrong output: %q", out)
	}
}

func TestRunProteinsInvalid(tst *testing.T) {
	setInput(tst, writeFasta(tst, ">bad\nATGXTAA\n"), "")

	out, err := captureStdout(tst, func() error {
		return runProteins("", sequence.DNA, bio.Standard)
	})
	var verr *sequence.ValidationError
	if !errors.As(err, &verr) {
		tst.Error("expected ValidationError, got", err)
	}
	if out != "" {
		tst.Errorf("output for an invalid sequence: %q", out)
	}
}
