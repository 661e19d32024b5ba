package bound

import (
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/bound/errors"
)

// Eligibility decides whether a method declared on target may be bound to
// instance. A non-nil error rejects the bind and becomes the bind-phase
// cause. Predicates are evaluated outside the instance's property-table
// lock and may inspect the instance.
type Eligibility func(target, instance *Object) error

// DefaultEligibility names the predicate Bound() resolves when no other
// name is selected.
const DefaultEligibility = "default"

// eligibilityRegistry is a registry of named eligibility predicates.
type eligibilityRegistry struct {
	mu         sync.RWMutex
	predicates map[string]Eligibility
}

func newEligibilityRegistry() *eligibilityRegistry {
	return &eligibilityRegistry{
		predicates: make(map[string]Eligibility),
	}
}

func (r *eligibilityRegistry) add(name string, p Eligibility) error {
	if name == "" || p == nil {
		return errors.ErrInvalidPredicate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.predicates[name]; ok {
		return errorc.With(
			errors.ErrDuplicatePredicate,
			errorc.String(errors.ErrorFieldPredicate, name),
		)
	}
	r.predicates[name] = p
	return nil
}

func (r *eligibilityRegistry) get(name string) (Eligibility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.predicates[name]
	if !ok {
		return nil, errorc.With(
			errors.ErrPredicateNotFound,
			errorc.String(errors.ErrorFieldPredicate, name),
		)
	}
	return p, nil
}

// guards is the process-wide predicate registry, with the default guard
// preregistered.
var guards = func() *eligibilityRegistry {
	r := newEligibilityRegistry()
	if err := r.add(DefaultEligibility, RejectPlainObjects); err != nil {
		panic(err)
	}
	return r
}()

// RegisterEligibility adds a named predicate for later selection with
// WithEligibility. Names are unique; registering an existing name fails
// with ErrDuplicatePredicate.
func RegisterEligibility(name string, p Eligibility) error {
	return guards.add(name, p)
}

// RejectPlainObjects is the default guard. It refuses instances of the
// shared base class and permits every real class instance, keeping the
// guard effectively permissive.
func RejectPlainObjects(target, instance *Object) error {
	if instance.Class() == Base() {
		return errorc.With(
			errors.ErrBindingRejected,
			errorc.String(errors.ErrorFieldClassName, instance.Class().Name()),
		)
	}
	return nil
}
