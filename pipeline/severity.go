package pipeline

import (
	"github.com/depscan/depscan-cli/api/vulnscan"
)

// A Histogram counts findings by severity class.
type Histogram struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Unknown  int `json:"unknown"`
}

// Summarize classifies findings into a severity histogram. Severity codes
// outside 1..4 count as unknown.
func Summarize(findings []vulnscan.Finding) Histogram {
	var h Histogram
	for _, f := range findings {
		switch f.Severity {
		case vulnscan.SeverityCritical:
			h.Critical++
		case vulnscan.SeverityHigh:
			h.High++
		case vulnscan.SeverityMedium:
			h.Medium++
		case vulnscan.SeverityLow:
			h.Low++
		default:
			h.Unknown++
		}
	}
	return h
}
