package display

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/depscan/depscan-cli/pipeline"
)

// Summary renders the per-unit severity table to STDOUT.
func Summary(reports []pipeline.UnitReport) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetTitle("SCAN RESULTS")

	t.AppendHeader(table.Row{
		"UNIT",
		"STATUS",
		"CRITICAL",
		"HIGH",
		"MEDIUM",
		"LOW",
		"UNKNOWN",
		"TOTAL",
	})

	for _, report := range reports {
		if report.Status != pipeline.StatusSuccess {
			t.AppendRow(table.Row{
				report.Name, report.Status, "-", "-", "-", "-", "-", "-",
			})
			continue
		}
		h := report.Severities
		t.AppendRow(table.Row{
			report.Name,
			report.Status,
			h.Critical,
			h.High,
			h.Medium,
			h.Low,
			h.Unknown,
			report.TotalFindings,
		})
	}

	t.Render()
}
