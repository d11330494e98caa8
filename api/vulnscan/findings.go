package vulnscan

// Severity codes as reported by the scanning backend.
const (
	SeverityCritical = 1
	SeverityHigh     = 2
	SeverityMedium   = 3
	SeverityLow      = 4
)

// A Finding is one vulnerability match reported by the scanning backend.
type Finding struct {
	Package          string   `json:"package"`
	Version          string   `json:"version"`
	Title            string   `json:"title"`
	Severity         int      `json:"severity"`
	VulnerabilityIDs []string `json:"vulnerabilityIds"`
	FixedIn          string   `json:"fixedIn,omitempty"`
}

// FirstVulnerabilityID returns the finding's first associated vulnerability
// identifier, or "" if it has none.
func (f Finding) FirstVulnerabilityID() string {
	if len(f.VulnerabilityIDs) == 0 {
		return ""
	}
	return f.VulnerabilityIDs[0]
}
