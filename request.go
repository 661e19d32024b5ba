package bound

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/bound/errors"
)

// request captures a single binding attempt: which prototype declared the
// method, which instance the access went through, and the original
// implementation. Immutable once constructed.
type request struct {
	target     *Object
	instance   *Object
	name       string
	fn         *Function
	enumerable bool
}

func newRequest(target, instance *Object, name string, fn *Function, enumerable bool) (request, error) {
	if instance == nil {
		return request{}, errors.ErrNilObject
	}
	if name == "" {
		return request{}, errors.ErrEmptyName
	}
	if fn == nil {
		return request{}, errorc.With(
			errors.ErrNotCallable,
			errorc.String(errors.ErrorFieldProperty, name),
		)
	}
	return request{
		target:     target,
		instance:   instance,
		name:       name,
		fn:         fn,
		enumerable: enumerable,
	}, nil
}
