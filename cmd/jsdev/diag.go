package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/phyten/jsdev/internal/engine"
	"github.com/phyten/jsdev/internal/termcolor"
	"github.com/phyten/jsdev/internal/textutil"
)

// Snippets wider than this get cut so one diagnostic stays on one line.
const snippetWidth = 120

// reportConfigError mirrors the historical "bad method line" wording for
// failures that happen before any input is read.
func reportConfigError(err error) {
	fmt.Fprintf(os.Stderr, "jsdev: bad method line: %v\n", err)
}

// reportScanError prints one line per fatal scan error:
//
//	jsdev: 3. unterminated string literal. <snippet>
func reportScanError(err error, colorMode string) {
	enabled := colorEnabled(colorMode)

	var scanErr *engine.Error
	if !errors.As(err, &scanErr) {
		fmt.Fprintf(os.Stderr, "jsdev: %v\n", err)
		return
	}

	line := "jsdev: " + termcolor.Apply(termcolor.ErrorStyle, scanErr.Error(), enabled)
	if snippet := strings.TrimSpace(scanErr.Snippet); snippet != "" {
		snippet = textutil.TruncateByWidth(snippet, snippetWidth, "…")
		line += " " + termcolor.Apply(termcolor.SnippetStyle, snippet, enabled)
	}
	fmt.Fprintln(os.Stderr, line)
}

func colorEnabled(colorMode string) bool {
	mode, err := termcolor.ParseMode(colorMode)
	if err != nil {
		mode = termcolor.ModeAuto
	}
	if mode == termcolor.ModeAuto {
		mode = termcolor.DetectMode(os.Stderr, termcolor.EnvMap(os.Environ()))
	}
	return mode == termcolor.ModeAlways
}
