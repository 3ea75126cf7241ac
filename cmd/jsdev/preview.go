package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/phyten/jsdev/internal/engine"
	"github.com/phyten/jsdev/internal/preview"
	"github.com/phyten/jsdev/internal/tagset"
)

// previewCmd transforms one file and renders an HTML side-by-side report.
// A scan error still produces a report (with the error box filled in) so
// the offending source is easy to inspect.
func previewCmd(args []string) int {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: jsdev preview [flags] <file> [token...]")
		fs.PrintDefaults()
	}

	var (
		configPath = fs.String("config", "", "config file (default: discovered .jsdev.*)")
		colorFlag  = fs.String("color", "", "auto|always|never")
		maxTag     = fs.Int("max-tag-length", 0, "maximum tag name length")
		noOpen     = fs.Bool("no-open", false, "write the report without opening a browser")
		outPath    = fs.String("o", "", "write the report here instead of a temp file")
	)
	flagArgs, rest := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return 2
	}
	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "jsdev: preview needs a source file")
		fs.Usage()
		return 2
	}
	file, tokens := rest[0], rest[1:]

	settings, err := resolveSettings(*configPath, *colorFlag, *maxTag, tokens)
	if err != nil {
		reportConfigError(err)
		return 2
	}
	reg, err := tagset.Build(settings.Tokens(), settings.MaxTagLength)
	if err != nil {
		reportConfigError(err)
		return 2
	}

	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsdev: %v\n", err)
		return 1
	}

	var buf bytes.Buffer
	runErr := engine.New(bytes.NewReader(src), &buf, reg).Run()

	data := preview.Data{
		File:   file,
		Tokens: settings.Tokens(),
		Input:  string(src),
		Output: buf.String(),
	}
	if runErr != nil {
		data.Err = runErr.Error()
	}

	reportPath, err := writeReport(data, *outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsdev: %v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stderr, "report: %s\n", reportPath)

	if !*noOpen {
		if err := preview.Open(reportPath); err != nil {
			fmt.Fprintf(os.Stderr, "jsdev: open report: %v\n", err)
		}
	}

	if runErr != nil {
		reportScanError(runErr, settings.Color)
		return 1
	}
	return 0
}

func writeReport(data preview.Data, path string) (string, error) {
	if path == "" {
		return preview.WriteTemp(data)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := preview.Render(f, data); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
