package pipeline_test

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscan/depscan-cli/api/vulnscan"
	"github.com/depscan/depscan-cli/archive"
	"github.com/depscan/depscan-cli/cache"
	"github.com/depscan/depscan-cli/errors"
	"github.com/depscan/depscan-cli/module"
	"github.com/depscan/depscan-cli/pipeline"
)

// fakeProvider treats every pom.xml as a standalone ordinary module named
// after its directory.
type fakeProvider struct {
	readErr error
}

func (p fakeProvider) Read(path string) (module.Descriptor, error) {
	if p.readErr != nil {
		return module.Descriptor{}, p.readErr
	}
	return module.Descriptor{
		Path: path,
		Name: filepath.Base(filepath.Dir(path)),
	}, nil
}

func (p fakeProvider) ManifestFilename() string {
	return "pom.xml"
}

// recorder collects events. Guarded because re-entrancy tests observe it
// from a second goroutine.
type recorder struct {
	mu     sync.Mutex
	events []pipeline.Event
}

func (r *recorder) observe(e pipeline.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) types() []pipeline.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]pipeline.EventType, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}

func writeProject(t *testing.T, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range dirs {
		path := filepath.Join(root, dir)
		require.NoError(t, os.MkdirAll(path, 0755))
		require.NoError(t, ioutil.WriteFile(filepath.Join(path, "pom.xml"), []byte("<project>"+dir+"</project>"), 0644))
	}
	return root
}

func newRunner(t *testing.T, dir string, scan pipeline.ScanFunc, observer pipeline.Observer) *pipeline.Runner {
	t.Helper()
	store, err := cache.Open(t.TempDir())
	require.NoError(t, err)

	r := pipeline.NewRunner(dir, fakeProvider{}, store, observer)
	r.Scan = scan
	return r
}

func okScan(findings ...vulnscan.Finding) pipeline.ScanFunc {
	return func(path, name string) ([]vulnscan.Finding, error) {
		return findings, nil
	}
}

func TestRunIsolatesUnitFailure(t *testing.T) {
	dir := writeProject(t, "a", "b", "c")
	rec := &recorder{}

	scan := func(path, name string) ([]vulnscan.Finding, error) {
		if name == "b" {
			return nil, errors.New("backend exploded")
		}
		return []vulnscan.Finding{{Package: name, Severity: 1, VulnerabilityIDs: []string{"CVE-1"}}}, nil
	}

	r := newRunner(t, dir, scan, rec.observe)
	reports, err := r.Run(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, reports, 3)
	assert.Equal(t, pipeline.StatusSuccess, reports[0].Status)
	assert.Equal(t, pipeline.StatusFailed, reports[1].Status)
	assert.Equal(t, pipeline.StatusSuccess, reports[2].Status)
	assert.Contains(t, reports[1].Error, "backend exploded")

	// The run still reaches completion.
	types := rec.types()
	assert.Equal(t, pipeline.EventRunCompleted, types[len(types)-1])
}

func TestRunEventSequence(t *testing.T) {
	dir := writeProject(t, "a", "b")
	rec := &recorder{}

	r := newRunner(t, dir, okScan(), rec.observe)
	_, err := r.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, []pipeline.EventType{
		pipeline.EventRunInitialized,
		pipeline.EventUnitRunning,
		pipeline.EventUnitSucceeded,
		pipeline.EventUnitRunning,
		pipeline.EventUnitSucceeded,
		pipeline.EventRunCompleted,
	}, rec.types())

	// The initial event carries every unit as created, in builder order.
	first := rec.events[0]
	require.Len(t, first.Reports, 2)
	assert.Equal(t, "a", first.Reports[0].Name)
	assert.Equal(t, "b", first.Reports[1].Name)
	for _, report := range first.Reports {
		assert.Equal(t, pipeline.StatusCreated, report.Status)
	}
}

func TestRunUsesCache(t *testing.T) {
	dir := writeProject(t, "a")
	calls := 0
	scan := func(path, name string) ([]vulnscan.Finding, error) {
		calls++
		return []vulnscan.Finding{{Package: "dep", Severity: 3}}, nil
	}

	r := newRunner(t, dir, scan, nil)
	_, err := r.Run(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// Second run with unchanged content is served from the cache.
	_, err = r.Run(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRunForceRefreshBypassesCacheRead(t *testing.T) {
	dir := writeProject(t, "a")
	calls := 0
	scan := func(path, name string) ([]vulnscan.Finding, error) {
		calls++
		return nil, nil
	}

	r := newRunner(t, dir, scan, nil)
	_, err := r.Run(context.Background(), false)
	require.NoError(t, err)

	reports, err := r.Run(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	// The hash is still computed on a forced run: it is needed for the
	// cache write.
	assert.NotEmpty(t, reports[0].Hash)
}

func TestRunReentrancy(t *testing.T) {
	dir := writeProject(t, "a", "b")

	started := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	calls := 0
	scan := func(path, name string) ([]vulnscan.Finding, error) {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			close(started)
			<-release
		}
		return nil, nil
	}

	r := newRunner(t, dir, scan, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := r.Run(context.Background(), false)
		assert.NoError(t, err)
	}()

	<-started

	// A trigger while running is a no-op reporting the in-flight state.
	reports, err := r.Run(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, pipeline.StatusRunning, reports[0].Status)
	assert.Equal(t, pipeline.StatusCreated, reports[1].Status)

	close(release)
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, calls)
}

func TestRunEnumerationFailure(t *testing.T) {
	dir := writeProject(t, "a")
	rec := &recorder{}

	store, err := cache.Open(t.TempDir())
	require.NoError(t, err)
	r := pipeline.NewRunner(dir, fakeProvider{readErr: errors.New("bad pom")}, store, rec.observe)
	r.Scan = okScan()

	_, err = r.Run(context.Background(), false)
	require.Error(t, err)

	var structured *errors.Error
	require.ErrorAs(t, err, &structured)
	assert.Equal(t, errors.Enumeration, structured.Type)

	// Run-level failure replaces the whole event sequence.
	assert.Equal(t, []pipeline.EventType{pipeline.EventRunFailed}, rec.types())
}

func TestRunCancellation(t *testing.T) {
	dir := writeProject(t, "a", "b")
	rec := &recorder{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newRunner(t, dir, okScan(), rec.observe)
	reports, err := r.Run(ctx, false)
	require.NoError(t, err)

	require.Len(t, reports, 2)
	for _, report := range reports {
		assert.Equal(t, pipeline.StatusFailed, report.Status)
		assert.Contains(t, report.Error, "canceled")
	}

	// Canceled units are never started: they go created → failed and emit
	// only the failure event.
	assert.Equal(t, []pipeline.EventType{
		pipeline.EventRunInitialized,
		pipeline.EventUnitFailed,
		pipeline.EventUnitFailed,
		pipeline.EventRunCompleted,
	}, rec.types())
}

func TestRunPackagingFailureIsolated(t *testing.T) {
	dir := writeProject(t, "a", "b")

	r := newRunner(t, dir, okScan(), nil)
	r.Pack = func(unit module.Unit) (*archive.Archive, error) {
		if unit.Name == "a" {
			return nil, errors.New("disk on fire")
		}
		return archive.Pack(unit)
	}

	reports, err := r.Run(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StatusFailed, reports[0].Status)
	assert.Equal(t, pipeline.StatusSuccess, reports[1].Status)
}

func TestRunPopulatesHistogram(t *testing.T) {
	dir := writeProject(t, "a")

	findings := []vulnscan.Finding{
		{Package: "p1", Severity: 1, VulnerabilityIDs: []string{"CVE-3"}},
		{Package: "p2", Severity: 1, VulnerabilityIDs: []string{"CVE-9"}},
		{Package: "p3", Severity: 4, VulnerabilityIDs: []string{"CVE-5"}},
		{Package: "p4", Severity: 7, VulnerabilityIDs: []string{"CVE-7"}},
	}

	r := newRunner(t, dir, okScan(findings...), nil)
	reports, err := r.Run(context.Background(), false)
	require.NoError(t, err)

	report := reports[0]
	assert.Equal(t, pipeline.Histogram{Critical: 2, Low: 1, Unknown: 1}, report.Severities)
	assert.Equal(t, 4, report.TotalFindings)

	// Findings are canonically ordered: severity ascending, then first
	// vulnerability ID descending.
	assert.Equal(t, "CVE-9", report.Findings[0].FirstVulnerabilityID())
	assert.Equal(t, "CVE-3", report.Findings[1].FirstVulnerabilityID())
	assert.Equal(t, "CVE-5", report.Findings[2].FirstVulnerabilityID())
	assert.Equal(t, "CVE-7", report.Findings[3].FirstVulnerabilityID())
}
