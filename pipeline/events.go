package pipeline

// EventType discriminates pipeline lifecycle events.
type EventType int

const (
	// EventRunInitialized carries the full unit list, each report created.
	EventRunInitialized EventType = iota
	// EventUnitRunning marks the start of one unit's scan.
	EventUnitRunning
	// EventUnitSucceeded carries a unit's histogram, total, and hash.
	EventUnitSucceeded
	// EventUnitFailed marks a unit whose packaging or scan failed.
	EventUnitFailed
	// EventRunCompleted marks the end of a run that built its unit list.
	EventRunCompleted
	// EventRunFailed marks an enumeration failure that prevented any unit
	// from being built.
	EventRunFailed
)

// An Event is one pipeline lifecycle notification.
//
// For a full run the sequence is exactly: one EventRunInitialized, then per
// unit either EventUnitRunning followed by EventUnitSucceeded or
// EventUnitFailed, then one EventRunCompleted. Units skipped by run
// cancellation emit only EventUnitFailed. EventRunFailed replaces the entire
// sequence when enumeration itself fails.
type Event struct {
	Type EventType

	// Unit is a snapshot of the affected unit's report, set on per-unit
	// events.
	Unit UnitReport

	// Reports is a snapshot of every unit's report, set on
	// EventRunInitialized and EventRunCompleted.
	Reports []UnitReport

	// Err is set on EventRunFailed.
	Err error
}

// An Observer receives pipeline events. Events are delivered synchronously
// and in order from the single pipeline goroutine; a nil Observer is valid.
type Observer func(Event)

func (r *Runner) emit(e Event) {
	if r.Observer != nil {
		r.Observer(e)
	}
}
