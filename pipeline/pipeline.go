// Package pipeline drives sequential scan execution across analysis units.
//
// Units are processed one at a time, never concurrently. That is a design
// choice: it bounds load on the rate-limited scanning backend and lets
// observers stream one unit's result at a time without merging partial
// updates.
package pipeline

import (
	"context"
	"sync"

	"github.com/apex/log"

	"github.com/depscan/depscan-cli/api/vulnscan"
	"github.com/depscan/depscan-cli/archive"
	"github.com/depscan/depscan-cli/cache"
	"github.com/depscan/depscan-cli/errors"
	"github.com/depscan/depscan-cli/module"
)

// Status is a unit's position in its lifecycle. Transitions are strictly
// created → running → success|failed, each state reached exactly once, with
// one exception: a unit never started because the run was canceled moves
// created → failed without passing through running.
type Status string

const (
	StatusCreated Status = "created"
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// A UnitReport is the per-unit result record. It is mutated only by the
// runner goroutine; observers and re-entrant callers always receive value
// snapshots.
type UnitReport struct {
	Name          string             `json:"name"`
	Hash          string             `json:"hash,omitempty"`
	Status        Status             `json:"status"`
	Severities    Histogram          `json:"severities"`
	TotalFindings int                `json:"totalFindings"`
	Findings      []vulnscan.Finding `json:"findings,omitempty"`
	Error         string             `json:"error,omitempty"`
	IsAggregate   bool               `json:"isAggregate"`
	Manifests     int                `json:"manifests"`
}

// PackFunc packages a unit. Injectable for testing; defaults to
// archive.Pack.
type PackFunc func(module.Unit) (*archive.Archive, error)

// ScanFunc submits an archive for remote scanning. Injectable for testing;
// defaults to vulnscan.Scan.
type ScanFunc func(path, name string) ([]vulnscan.Finding, error)

// A Runner owns one process's pipeline state. At most one run is active at
// a time; a trigger received while running is answered with the in-flight
// state rather than starting a second run.
type Runner struct {
	Dir      string
	Provider module.StructureProvider
	Cache    *cache.Store
	Pack     PackFunc
	Scan     ScanFunc
	Observer Observer

	mu      sync.Mutex
	running bool
	reports []*UnitReport
}

// NewRunner returns a Runner with production packaging and scanning wired
// in.
func NewRunner(dir string, provider module.StructureProvider, store *cache.Store, observer Observer) *Runner {
	return &Runner{
		Dir:      dir,
		Provider: provider,
		Cache:    store,
		Pack:     archive.Pack,
		Scan:     vulnscan.Scan,
		Observer: observer,
	}
}

// State returns whether a run is in progress and a snapshot of the current
// per-unit reports.
func (r *Runner) State() (bool, []UnitReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running, snapshotReports(r.reports)
}

// Run executes a full pipeline: discover manifests, build units, then scan
// each unit in order. forceRefresh bypasses cache reads (the hash is still
// computed, since it is needed for the cache write).
//
// If a run is already in progress the call is a no-op returning the
// in-flight state. A canceled ctx marks remaining units failed without
// starting them (no running state, no running event) and completes the run;
// enumeration failures abort the run before any unit is built and are
// returned as the error.
func (r *Runner) Run(ctx context.Context, forceRefresh bool) ([]UnitReport, error) {
	r.mu.Lock()
	if r.running {
		snapshot := snapshotReports(r.reports)
		r.mu.Unlock()
		log.Debug("pipeline already running, returning in-flight state")
		return snapshot, nil
	}
	r.running = true
	r.reports = nil
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()

	units, err := r.enumerate()
	if err != nil {
		err = &errors.Error{
			Cause:           err,
			Type:            errors.Enumeration,
			Message:         "could not enumerate project manifests",
			Troubleshooting: "Check that the project directory exists and that its manifest files are well-formed.",
		}
		r.emit(Event{Type: EventRunFailed, Err: err})
		return nil, err
	}

	reports := make([]*UnitReport, len(units))
	for i, unit := range units {
		reports[i] = &UnitReport{
			Name:        unit.Name,
			Status:      StatusCreated,
			IsAggregate: unit.IsAggregate,
			Manifests:   len(unit.Manifests),
		}
	}
	r.mu.Lock()
	r.reports = reports
	r.mu.Unlock()

	r.emit(Event{Type: EventRunInitialized, Reports: snapshotReports(reports)})

	for i, unit := range units {
		report := reports[i]
		if ctx.Err() != nil {
			r.failUnit(report, errors.Wrap(ctx.Err(), "run canceled"))
			continue
		}
		r.processUnit(unit, report, forceRefresh)
	}

	r.emit(Event{Type: EventRunCompleted, Reports: snapshotReports(reports)})
	return snapshotReports(reports), nil
}

func (r *Runner) enumerate() ([]module.Unit, error) {
	manifests, err := module.Discover(r.Dir, r.Provider)
	if err != nil {
		return nil, err
	}
	if len(manifests) == 0 {
		return nil, errors.Errorf("no manifests found under %q", r.Dir)
	}

	builder := module.Builder{Provider: r.Provider}
	return builder.Build(manifests)
}

// processUnit runs one unit through packaging, cache lookup, remote scan,
// and summarization. Failures are isolated: the report is marked failed and
// the run moves on.
func (r *Runner) processUnit(unit module.Unit, report *UnitReport, forceRefresh bool) {
	r.setStatus(report, StatusRunning)
	r.emit(Event{Type: EventUnitRunning, Unit: *report})

	a, err := r.Pack(unit)
	if err != nil {
		r.failUnit(report, errors.Wrap(err, "could not package unit"))
		return
	}
	// Scratch archive state is released on every path before the next
	// unit starts.
	defer a.Cleanup()

	r.mu.Lock()
	report.Hash = a.Hash
	r.mu.Unlock()

	var findings []vulnscan.Finding
	hit := false
	if !forceRefresh {
		findings, hit = r.Cache.Get(unit.RootManifest, a.Hash)
	}

	if !hit {
		findings, err = r.Scan(a.Path, unit.Name)
		if err != nil {
			r.failUnit(report, errors.Wrap(err, "remote scan failed"))
			return
		}
		// A cache-write failure is non-fatal: the in-memory result is
		// still reported.
		if err := r.Cache.Put(unit.RootManifest, a.Hash, findings); err != nil {
			log.WithField("unit", unit.Name).Warnf("could not cache scan result: %s", err.Error())
		}
	}

	vulnscan.SortFindings(findings)
	r.mu.Lock()
	report.Severities = Summarize(findings)
	report.TotalFindings = len(findings)
	report.Findings = findings
	r.mu.Unlock()
	r.setStatus(report, StatusSuccess)
	r.emit(Event{Type: EventUnitSucceeded, Unit: *report})
}

func (r *Runner) failUnit(report *UnitReport, err error) {
	log.WithField("unit", report.Name).Debugf("unit failed: %s", err.Error())
	r.mu.Lock()
	report.Error = err.Error()
	r.mu.Unlock()
	r.setStatus(report, StatusFailed)
	r.emit(Event{Type: EventUnitFailed, Unit: *report})
}

// setStatus takes the state lock so that re-entrant Run and State callers
// always observe a consistent snapshot.
func (r *Runner) setStatus(report *UnitReport, status Status) {
	r.mu.Lock()
	report.Status = status
	r.mu.Unlock()
}

func snapshotReports(reports []*UnitReport) []UnitReport {
	out := make([]UnitReport, len(reports))
	for i, report := range reports {
		out[i] = *report
	}
	return out
}
