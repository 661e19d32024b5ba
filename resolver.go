package bound

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/bound/constants"
	"github.com/ygrebnov/bound/errors"
)

// resolver runs the binding state machine. The eligibility predicate is
// selected by name from the registry; every other transition is fixed.
type resolver struct {
	guard string
}

// Option configures the decorator at construction time.
type Option func(*resolver)

// WithEligibility selects the named eligibility predicate registered via
// RegisterEligibility. The name is resolved on each access; an
// unregistered name surfaces as a bind-phase failure.
func WithEligibility(name string) Option {
	return func(r *resolver) {
		if name != "" {
			r.guard = name
		}
	}
}

func newResolver(opts ...Option) *resolver {
	r := &resolver{guard: DefaultEligibility}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// resolve runs one access through the state machine. The eligibility
// predicate is evaluated outside the instance's property-table lock, so
// predicates may inspect the instance; the own-slot re-check and the
// define then happen atomically under the lock, keeping the bound-method
// slot written at most once per (instance, name) regardless of concurrent
// accesses.
//
// A failed pass installs nothing; the next access restarts from the
// initial state.
func (r *resolver) resolve(req request) *Outcome {
	initial := &Outcome{Kind: KindInitial, Seq: ticks.next()}

	// Access through the defining object itself: hand back the untouched
	// original so introspection never mutates the prototype.
	if req.instance == req.target {
		return &Outcome{Kind: KindPrototypeAccess, Fn: req.fn, Seq: ticks.next(), Prev: initial}
	}

	// A prior access already installed a bound copy: return that exact
	// reference, never rebind.
	req.instance.mu.Lock()
	out, ok := r.existingLocked(req, initial)
	req.instance.mu.Unlock()
	if ok {
		return out
	}

	guard, err := guards.get(r.guard)
	if err != nil {
		return r.fail(initial, constants.PhaseBind, err)
	}
	if err = guard(req.target, req.instance); err != nil {
		return r.fail(initial, constants.PhaseBind, err)
	}

	fn, err := req.fn.Bind(req.instance)
	if err != nil {
		return r.fail(initial, constants.PhaseBind, err)
	}
	created := &Outcome{Kind: KindCreated, Fn: fn, Seq: ticks.next(), Prev: initial}

	req.instance.mu.Lock()
	defer req.instance.mu.Unlock()

	// Re-check: a concurrent access may have installed the binding while
	// the lock was released. The first copy in wins.
	if out, ok = r.existingLocked(req, created); ok {
		return out
	}

	d := Descriptor{Value: fn, Enumerable: req.enumerable, Writable: true, Configurable: true}
	if err = req.instance.defineOwnLocked(req.name, d); err != nil {
		return r.fail(created, constants.PhaseDefine, err)
	}
	return &Outcome{Kind: KindDefinedBinding, Fn: fn, Seq: ticks.next(), Prev: created}
}

// existingLocked resolves an already-present own slot; the caller must
// hold the instance's property-table lock. A non-callable own value is a
// bind-phase type error.
func (r *resolver) existingLocked(req request, prev *Outcome) (*Outcome, bool) {
	d, ok := req.instance.ownLocked(req.name)
	if !ok {
		return nil, false
	}
	fn, isFn := d.Value.(*Function)
	if !isFn {
		return r.fail(prev, constants.PhaseBind, errorc.With(
			errors.ErrNotCallable,
			errorc.String(errors.ErrorFieldProperty, req.name),
		)), true
	}
	return &Outcome{Kind: KindExistingBinding, Fn: fn, Seq: ticks.next(), Prev: prev}, true
}

func (r *resolver) fail(prev *Outcome, phase string, err error) *Outcome {
	return &Outcome{Kind: KindError, Err: err, Phase: phase, Seq: ticks.next(), Prev: prev}
}
