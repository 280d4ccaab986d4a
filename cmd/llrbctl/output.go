package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// configureColor sets the package-global color.NoColor switch according to
// the batch.color_mode config value, the way Sumatoshi's uast validate
// command forces color on/off for its --color flag.
func configureColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false //nolint:reassign // intentional override of library global
	case "never":
		color.NoColor = true //nolint:reassign // intentional override of library global
	case "auto":
		// leave fatih/color's own isatty-based default in place.
	}
}

func printOK(w io.Writer, format string, args ...any) {
	color.New(color.FgGreen).Fprintf(w, format, args...)
}

func printWarn(w io.Writer, format string, args ...any) {
	color.New(color.FgYellow).Fprintf(w, format, args...)
}

func printErr(w io.Writer, format string, args ...any) {
	color.New(color.FgRed).Fprintf(w, format, args...)
}

// newKVTable returns a go-pretty table styled like the borderless,
// non-separated tables the analyzer formatter renders its collections with.
func newKVTable(headers ...any) table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false

	if len(headers) > 0 {
		tbl.AppendHeader(headers)
	}

	return tbl
}
