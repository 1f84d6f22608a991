package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/sqlkw"
	"github.com/jedib0t/go-pretty/v6/table"
)

// renderReport writes the run summary as tables.
func renderReport(w io.Writer, report *sqlkw.Report, outDir string, published bool) {
	sources := table.NewWriter()
	sources.SetOutputMirror(w)
	sources.SetStyle(table.StyleLight)
	sources.AppendHeader(table.Row{"Source", "Dialect", "Status", "Extracted", "Kept", "Warnings", "Detail"})
	for _, s := range report.Sources {
		detail := s.ContentHash
		if s.Error != "" {
			detail = s.Error
		}
		warnings := len(s.ExtractionWarnings) + len(s.NormalizationWarnings)
		sources.AppendRow(table.Row{s.Source.Name, s.Source.Dialect, s.Status, s.Extracted, s.Kept, warnings, detail})
	}
	sources.Render()

	dialects := table.NewWriter()
	dialects.SetOutputMirror(w)
	dialects.SetStyle(table.StyleLight)
	dialects.AppendHeader(table.Row{"Dialect", "Keywords", "Reserved", "Non-reserved", "Conflicts"})
	for _, d := range report.Dialects {
		dialects.AppendRow(table.Row{d.Dialect, d.Keywords, d.Reserved, d.NonReserved, len(d.Conflicts)})
	}
	dialects.AppendFooter(table.Row{"merged", report.Merged, "", "", report.Conflicts()})
	dialects.Render()

	if incomplete := report.Incomplete(); len(incomplete) > 0 {
		names := make([]string, len(incomplete))
		for i, d := range incomplete {
			names[i] = string(d)
		}
		fmt.Fprintf(w, "incomplete: %s\n", strings.Join(names, ", "))
	}

	if published {
		fmt.Fprintf(w, "wrote %d files to %s\n", len(report.Files)+1, outDir)
	} else {
		fmt.Fprintf(w, "no files written to %s\n", outDir)
	}
}
