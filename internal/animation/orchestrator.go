package animation

import "time"

// Handle identifies one animation run.
type Handle int64

type run struct {
	handle  Handle
	plan    Plan
	elapsed time.Duration
	done    func(Handle)
}

// Orchestrator drives at most one Plan at a time for a single owner. It is
// event-loop driven: the owner calls Advance from its tick handler, and the
// completion callback fires from within Advance on a later turn of the loop,
// never synchronously inside Start. Cancellation is synchronous and total:
// once Cancel returns, the cancelled run can never deliver its completion.
type Orchestrator struct {
	lastHandle Handle
	active     *run
}

// NewOrchestrator creates an idle orchestrator.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{}
}

// Start takes ownership of plan and begins a new run. Any run still active is
// cancelled first and its completion callback never fires. done is invoked
// exactly once, with the returned handle, when the run finishes.
func (o *Orchestrator) Start(plan Plan, done func(Handle)) Handle {
	o.active = nil
	o.lastHandle++
	o.active = &run{handle: o.lastHandle, plan: plan, done: done}
	return o.lastHandle
}

// Cancel stops the run identified by h. Cancelling an already-completed,
// superseded, or unknown handle is a no-op.
func (o *Orchestrator) Cancel(h Handle) {
	if o.active != nil && o.active.handle == h {
		o.active = nil
	}
}

// Advance moves the active run forward by dt and fires its completion
// callback once all properties have reached their end values. It reports
// whether a run is still active afterwards.
func (o *Orchestrator) Advance(dt time.Duration) bool {
	r := o.active
	if r == nil {
		return false
	}

	r.elapsed += dt
	if r.elapsed < r.plan.Duration {
		return true
	}

	// Clear before notifying so the callback may start a fresh run.
	o.active = nil
	if r.done != nil {
		r.done(r.handle)
	}
	return o.active != nil
}

// Running reports whether a run is in flight.
func (o *Orchestrator) Running() bool {
	return o.active != nil
}

// ActiveHandle returns the in-flight run's handle, if any.
func (o *Orchestrator) ActiveHandle() (Handle, bool) {
	if o.active == nil {
		return 0, false
	}
	return o.active.handle, true
}

// Progress returns the raw elapsed fraction of the active run, or 1 when
// idle.
func (o *Orchestrator) Progress() float64 {
	if o.active == nil {
		return 1
	}
	return o.active.plan.Fraction(o.active.elapsed)
}

// Value returns the current interpolated value of a property on the active
// run.
func (o *Orchestrator) Value(property string) (float64, bool) {
	if o.active == nil {
		return 0, false
	}
	return o.active.plan.ValueAt(property, o.active.elapsed)
}

// Values snapshots every property of the active run at its current
// interpolated position. The map is empty when idle.
func (o *Orchestrator) Values() map[string]float64 {
	values := make(map[string]float64)
	if o.active == nil {
		return values
	}
	for _, track := range o.active.plan.Tracks {
		if v, ok := o.active.plan.ValueAt(track.Property, o.active.elapsed); ok {
			values[track.Property] = v
		}
	}
	return values
}
