package store

import (
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"bitbucket.org/Davydov/bioseq/report"
	"bitbucket.org/Davydov/bioseq/sequence"
)

func openStore(tst *testing.T) *Store {
	tst.Helper()
	s, err := Open(filepath.Join(tst.TempDir(), "bioseq.db"))
	if err != nil {
		tst.Fatal("Error opening store:", err)
	}
	tst.Cleanup(func() { s.Close() })
	return s
}

func TestRecords(tst *testing.T) {
	s := openStore(tst)

	r, _ := sequence.New("ATGCGT", sequence.DNA, "first")
	if err := s.SaveRecord(r); err != nil {
		tst.Fatal("Error saving record:", err)
	}
	rna, _ := sequence.New("AUGC", sequence.RNA, "second")
	if err := s.SaveRecord(rna); err != nil {
		tst.Fatal("Error saving record:", err)
	}

	r2, ok, err := s.LoadRecord("first")
	if err != nil || !ok {
		tst.Fatal("Error loading record:", ok, err)
	}
	if r2 != r {
		tst.Error("records differ:", r, r2)
	}

	_, ok, err = s.LoadRecord("missing")
	if err != nil || ok {
		tst.Error("missing record found:", ok, err)
	}

	labels, err := s.Labels()
	if err != nil {
		tst.Fatal(err)
	}
	sort.Strings(labels)
	if !reflect.DeepEqual(labels, []string{"first", "second"}) {
		tst.Error("wrong labels:", labels)
	}

	// last write wins
	r3, _ := sequence.New("GGG", sequence.DNA, "first")
	s.SaveRecord(r3)
	r4, _, _ := s.LoadRecord("first")
	if r4.Symbols() != "GGG" {
		tst.Error("record was not overwritten:", r4)
	}
}

func TestInvalidStoredRecord(tst *testing.T) {
	s := openStore(tst)
	err := saveData(s.db, RECORDS, []byte("bad"), []byte(`{"label":"bad","kind":"DNA","sequence":"ACXG"}`))
	if err != nil {
		tst.Fatal(err)
	}
	if _, ok, err := s.LoadRecord("bad"); err == nil || ok {
		tst.Error("invalid stored record accepted")
	}
}

func TestReports(tst *testing.T) {
	s := openStore(tst)

	if rep, err := s.LoadReport("none"); err != nil || rep != nil {
		tst.Error("missing report found:", rep, err)
	}

	r, _ := sequence.New("ATGGCCTAACCCATGAAATAG", sequence.DNA, "rep")
	rep, err := report.New(r, 5, nil)
	if err != nil {
		tst.Fatal(err)
	}
	if err := s.SaveReport(rep); err != nil {
		tst.Fatal("Error saving report:", err)
	}
	rep2, err := s.LoadReport("rep")
	if err != nil {
		tst.Fatal("Error loading report:", err)
	}
	if !reflect.DeepEqual(rep, rep2) {
		tst.Errorf("reports differ:\n%+v\n%+v", rep, rep2)
	}
}

func TestNilDB(tst *testing.T) {
	if err := saveData(nil, RECORDS, []byte("k"), []byte("v")); err != nil {
		tst.Error(err)
	}
	if d, err := loadData(nil, RECORDS, []byte("k")); d != nil || err != nil {
		tst.Error("data from nil database:", d, err)
	}
}

func TestEmptyLabel(tst *testing.T) {
	s := openStore(tst)

	r, _ := sequence.New("ACGT", sequence.DNA, "")
	if err := s.SaveRecord(r); err != nil {
		tst.Fatal("Error saving record without label:", err)
	}
	r2, ok, err := s.LoadRecord("")
	if err != nil || !ok {
		tst.Fatal("Error loading record without label:", ok, err)
	}
	if r2 != r {
		tst.Error("records differ:", r, r2)
	}

	rep, err := report.New(r, 2, nil)
	if err != nil {
		tst.Fatal(err)
	}
	if err := s.SaveReport(rep); err != nil {
		tst.Fatal("Error saving report without label:", err)
	}
	if rep2, err := s.LoadReport(""); err != nil || rep2 == nil || rep2.Record != r {
		tst.Error("wrong report without label:", rep2, err)
	}

	labels, _ := s.Labels()
	if !reflect.DeepEqual(labels, []string{sequence.DefaultLabel}) {
		tst.Error("wrong labels:", labels)
	}
}
