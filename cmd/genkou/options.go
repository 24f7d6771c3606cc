package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/iw2rmb/genkou/grid"
)

// options are the command line settings. Every flag defaults to its
// GENKOU_* environment variable when set.
type options struct {
	submitURL    string
	charsPerLine int
	outDir       string
	logPath      string
	showVersion  bool

	// importPath is the optional positional document to open.
	importPath string
}

func parseOptions(args []string, getenv func(string) string, stderr io.Writer) (options, error) {
	var o options

	cpl := grid.DefaultCharsPerLine
	if v := getenv("GENKOU_CHARS_PER_LINE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return o, fmt.Errorf("GENKOU_CHARS_PER_LINE: %w", err)
		}
		cpl = n
	}
	outDir := getenv("GENKOU_OUT_DIR")
	if outDir == "" {
		outDir = "."
	}

	fs := flag.NewFlagSet("genkou", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: genkou [flags] [essay.json|essay.yaml]")
		fs.PrintDefaults()
	}
	fs.StringVar(&o.submitURL, "submit-url", getenv("GENKOU_SUBMIT_URL"), "review endpoint for submissions")
	fs.IntVar(&o.charsPerLine, "chars-per-line", cpl, fmt.Sprintf("grid width, one of %v", grid.CharsPerLineOptions))
	fs.StringVar(&o.outDir, "out", outDir, "directory for exported files")
	fs.StringVar(&o.logPath, "log", "", "write logs to this file")
	fs.BoolVar(&o.showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	if !grid.ValidCharsPerLine(o.charsPerLine) {
		return o, fmt.Errorf("chars-per-line must be one of %v, got %d", grid.CharsPerLineOptions, o.charsPerLine)
	}
	switch fs.NArg() {
	case 0:
	case 1:
		o.importPath = fs.Arg(0)
	default:
		return o, fmt.Errorf("at most one document may be given, got %d", fs.NArg())
	}
	return o, nil
}
