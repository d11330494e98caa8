package vulnscan

import (
	"sort"
)

// SortFindings applies the canonical finding order in place: ascending
// severity code (critical first), then first vulnerability identifier in
// descending lexicographic order. Cached and freshly fetched reports are
// byte-comparable because both pass through this ordering.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Severity != findings[j].Severity {
			return findings[i].Severity < findings[j].Severity
		}
		return findings[i].FirstVulnerabilityID() > findings[j].FirstVulnerabilityID()
	})
}
