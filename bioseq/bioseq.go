/*

Bioseq analyses nucleotide sequences: symbol composition, GC content,
transcription, reverse complement, six-frame translation and protein
(open reading frame) extraction.

The basic usage of bioseq looks like this:

	bioseq info ATGGCCTAA

, sequences can also be read from a FASTA file:

	bioseq --in genes.fst proteins --minlen 50 --unique

To see all the commands and options run:

	bioseq --help

*/
package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/bioseq/bio"
	"bitbucket.org/Davydov/bioseq/sequence"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("bioseq")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("bioseq", "nucleotide sequence analysis").Version(version)

	// input
	inF      = app.Flag("in", "read sequences from a FASTA file instead of the command line").ExistingFile()
	label    = app.Flag("label", "label of the command line sequence").Default(sequence.DefaultLabel).String()
	kindName = app.Flag("kind", "sequence kind (dna or rna)").Default("dna").Enum("dna", "rna", "DNA", "RNA")
	gcodeID  = app.Flag("gcode", "NCBI genetic code id, standard by default").Default("1").Int()

	// logging
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")

	// info
	infoCmd = app.Command("info", "print sequence information, symbol counts and GC content")
	infoSeq = infoCmd.Arg("sequence", "nucleotide sequence").String()

	// colored
	coloredCmd = app.Command("colored", "print the sequence with terminal colors")
	coloredSeq = coloredCmd.Arg("sequence", "nucleotide sequence").String()

	// random
	randomCmd    = app.Command("random", "generate a random sequence")
	randomLength = randomCmd.Flag("length", "sequence length").Default("42").Int()
	randomGC     = randomCmd.Flag("gc", "GC bias, probability of G or C").Default("0.5").Float64()
	randomSeed   = randomCmd.Flag("seed", "random generator seed, default time based").Default("-1").Int64()
	randomDB     = randomCmd.Flag("db", "save the record to a database").String()

	// gc
	gcCmd    = app.Command("gc", "compute GC content in windows")
	gcSeq    = gcCmd.Arg("sequence", "nucleotide sequence").String()
	gcWindow = gcCmd.Flag("window", "window size").Default("20").Int()
	gcPlotF  = gcCmd.Flag("plot", "plot GC percentage to a file (svg, png, pdf)").String()

	// translate
	translateCmd   = app.Command("translate", "translate reading frames")
	translateSeq   = translateCmd.Arg("sequence", "nucleotide sequence").String()
	translateFrame = translateCmd.Flag("frame", "frame offset (0, 1 or 2), all six frames by default").Default("-1").Int()

	// proteins
	proteinsCmd    = app.Command("proteins", "extract proteins from all six frames")
	proteinsSeq    = proteinsCmd.Arg("sequence", "nucleotide sequence").String()
	proteinsMinLen = proteinsCmd.Flag("minlen", "minimum protein length").Default("0").Int()
	proteinsUnique = proteinsCmd.Flag("unique", "remove repeated proteins").Bool()

	// report
	reportCmd    = app.Command("report", "run all the analyses and print a JSON report")
	reportSeq    = reportCmd.Arg("sequence", "nucleotide sequence").String()
	reportWindow = reportCmd.Flag("window", "window size").Default("20").Int()
	reportJSONF  = reportCmd.Flag("json", "write json report to a file").String()
	reportDB     = reportCmd.Flag("db", "save records and reports to a database").String()

	// show
	showCmd   = app.Command("show", "show stored records and reports")
	showDB    = showCmd.Flag("db", "database file").Required().ExistingFile()
	showLabel = showCmd.Arg("label", "record label, list all labels if empty").String()
)

// setupLogging configures the logging backend and the log level for
// all the packages.
func setupLogging() (closer func()) {
	logging.SetFormatter(formatter)

	closer = func() {}
	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		closer = func() { f.Close() }
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	for _, module := range []string{"bioseq", "bio", "report", "store"} {
		logging.SetLevel(level, module)
	}
	return closer
}

// records returns the records to analyse: either all the sequences
// from the FASTA file or the command line sequence.
func records(arg string, kind sequence.Kind) ([]sequence.Record, error) {
	if *inF == "" {
		if arg == "" {
			return nil, fmt.Errorf("no sequence given, use --in or a sequence argument")
		}
		r, err := sequence.New(arg, kind, *label)
		if err != nil {
			return nil, err
		}
		return []sequence.Record{r}, nil
	}

	f, err := os.Open(*inF)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seqs, err := bio.ReadFasta(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", *inF, err)
	}
	if len(seqs) == 0 {
		return nil, fmt.Errorf("no sequences in %s", *inF)
	}
	recs := make([]sequence.Record, 0, len(seqs))
	for _, s := range seqs {
		r, err := sequence.New(s.Sequence, kind, s.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		recs = append(recs, r)
	}
	log.Infof("Read %d sequences from %s", len(recs), *inF)
	return recs, nil
}

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	closer := setupLogging()
	defer closer()

	log.Info(version)
	log.Info("Command line:", os.Args)

	kind, err := sequence.ParseKind(*kindName)
	if err != nil {
		log.Fatal(err)
	}
	gcode, ok := bio.GeneticCodes[*gcodeID]
	if !ok {
		log.Fatalf("couldn't load genetic code with id=%d", *gcodeID)
	}
	log.Infof("Genetic code: %d, \"%s\"", gcode.ID, gcode.Name)

	switch cmd {
	case infoCmd.FullCommand():
		err = runInfo(*infoSeq, kind)
	case coloredCmd.FullCommand():
		err = runColored(*coloredSeq, kind)
	case randomCmd.FullCommand():
		err = runRandom(kind)
	case gcCmd.FullCommand():
		err = runGC(*gcSeq, kind)
	case translateCmd.FullCommand():
		err = runTranslate(*translateSeq, kind, gcode)
	case proteinsCmd.FullCommand():
		err = runProteins(*proteinsSeq, kind, gcode)
	case reportCmd.FullCommand():
		err = runReport(*reportSeq, kind, gcode)
	case showCmd.FullCommand():
		err = runShow()
	}
	if err != nil {
		log.Fatal(err)
	}
}
