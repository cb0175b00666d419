package gcplot

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPlot(tst *testing.T) {
	p, err := New([]float64{40, 55, 60, 35}, 20, "GC")
	if err != nil {
		tst.Fatal("Error creating plot:", err)
	}
	var buf bytes.Buffer
	if err := WriteSVG(p, &buf); err != nil {
		tst.Fatal("Error writing svg:", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		tst.Error("output is not svg")
	}

	fn := filepath.Join(tst.TempDir(), "gc.png")
	if err := Save(p, fn); err != nil {
		tst.Fatal("Error saving plot:", err)
	}
	if st, err := os.Stat(fn); err != nil || st.Size() == 0 {
		tst.Error("plot file is empty:", err)
	}
}

func TestPlotErrors(tst *testing.T) {
	if _, err := New(nil, 20, "GC"); err == nil {
		tst.Error("empty plot created")
	}
	if _, err := New([]float64{1}, 0, "GC"); err == nil {
		tst.Error("zero window accepted")
	}
}
