package bound

import (
	"fmt"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/bound/errors"
)

// Decorator rewrites a method declaration in place on its defining object.
type Decorator interface {
	Decorate(target *Object, name string) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(target *Object, name string) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(target *Object, name string) error {
	return fn(target, name)
}

// Bound returns the decorator guaranteeing that a method, once accessed
// off an instance, is permanently bound to that instance's execution
// context, however the resulting reference is later invoked. It takes no
// configuration.
//
// Decoration replaces the method's value slot on the defining object with
// a computed accessor; all binding work is deferred to property access.
// Each access resolves to one of four outcomes: the untouched original for
// access through the defining object itself, the previously installed
// bound copy, a freshly created and installed bound copy, or a
// *BindingError.
func Bound() Decorator {
	return with(newResolver())
}

// BoundWith returns the same decorator with a non-default configuration,
// currently limited to eligibility predicate selection. Bound() remains
// the zero-configuration form.
func BoundWith(opts ...Option) Decorator {
	return with(newResolver(opts...))
}

// with builds the decorator around a specific resolver.
func with(r *resolver) Decorator {
	return DecoratorFunc(func(target *Object, name string) error {
		if target == nil {
			return errors.ErrNilObject
		}
		if name == "" {
			return errors.ErrEmptyName
		}
		d, ok := target.OwnDescriptor(name)
		if !ok {
			return errorc.With(
				errors.ErrPropertyNotFound,
				errorc.String(errors.ErrorFieldProperty, name),
			)
		}
		orig, ok := d.Value.(*Function)
		if !ok {
			return errorc.With(
				errors.ErrNotCallable,
				errorc.String(errors.ErrorFieldProperty, name),
				errorc.String(errors.ErrorFieldValueType, fmt.Sprintf("%T", d.Value)),
			)
		}
		enumerable := d.Enumerable

		getter := func(receiver *Object) (any, error) {
			req, err := newRequest(target, receiver, name, orig, enumerable)
			if err != nil {
				return nil, err
			}
			out := r.resolve(req)
			switch out.Kind {
			case KindPrototypeAccess, KindExistingBinding, KindDefinedBinding:
				return out.Fn, nil
			case KindError:
				return nil, &BindingError{Property: name, Phase: out.Phase, Err: out.Err}
			default:
				panic(fmt.Sprintf("bound: non-terminal resolution outcome %q", out.Kind))
			}
		}

		return target.DefineOwn(name, Descriptor{
			Get:          getter,
			Enumerable:   enumerable,
			Configurable: true,
		})
	})
}
