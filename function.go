package bound

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/bound/errors"
)

// CallFunc is the signature of a method implementation. The receiver the
// call was dispatched through is passed as this.
type CallFunc func(this *Object, args ...any) (any, error)

// Function is the callable value kind stored in property tables. Functions
// are reference values: repeated accesses yield the same binding exactly
// when they return the same *Function pointer, which is what makes
// listener-removal by reference possible.
type Function struct {
	name    string
	fn      CallFunc
	boundTo *Object
	seq     uint64
}

// NewFunction wraps fn as a named, unbound Function.
func NewFunction(name string, fn CallFunc) (*Function, error) {
	if name == "" {
		return nil, errors.ErrEmptyName
	}
	if fn == nil {
		return nil, errorc.With(
			errors.ErrNotCallable,
			errorc.String(errors.ErrorFieldProperty, name),
		)
	}
	return &Function{name: name, fn: fn}, nil
}

// Name returns the name the function was declared under.
func (f *Function) Name() string { return f.name }

// BoundTo returns the instance the function is permanently bound to, or nil
// for an unbound function.
func (f *Function) BoundTo() *Object { return f.boundTo }

// Seq returns the stamp assigned when the function was bound, or 0 for an
// unbound function. Informational only.
func (f *Function) Seq() uint64 { return f.seq }

// Call invokes the function. For a bound function the fixed receiver is
// used regardless of this; no call style can re-target it.
func (f *Function) Call(this *Object, args ...any) (any, error) {
	if f.boundTo != nil {
		this = f.boundTo
	}
	return f.fn(this, args...)
}

// Bind returns a fresh Function whose receiver is permanently fixed to
// instance. Binding an already-bound function returns it unchanged: the
// original receiver cannot be re-targeted.
func (f *Function) Bind(instance *Object) (*Function, error) {
	if instance == nil {
		return nil, errors.ErrNilObject
	}
	if f.boundTo != nil {
		return f, nil
	}
	return &Function{name: f.name, fn: f.fn, boundTo: instance, seq: ticks.next()}, nil
}
