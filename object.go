package bound

import (
	"sort"
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/bound/errors"
)

// Object is a dynamic object: an own-property table plus an optional
// prototype link. Lookups walk the chain from the receiver; writes always
// target the own table. The table is guarded by a mutex so the
// bound-method slot keeps its write-once guarantee under concurrent
// access.
type Object struct {
	mu     sync.Mutex
	class  *Class
	proto  *Object
	props  map[string]Descriptor
	frozen bool
}

// NewObject creates a plain object of the base class with the given
// prototype, which may be nil.
func NewObject(proto *Object) *Object {
	return newObject(baseClass, proto)
}

func newObject(class *Class, proto *Object) *Object {
	return &Object{
		class: class,
		proto: proto,
		props: make(map[string]Descriptor),
	}
}

// Class returns the class the object was created by. Zero-value objects
// report the base class.
func (o *Object) Class() *Class {
	if o.class == nil {
		return baseClass
	}
	return o.class
}

// Prototype returns the object's prototype, or nil.
func (o *Object) Prototype() *Object { return o.proto }

func (o *Object) own(name string) (Descriptor, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ownLocked(name)
}

// ownLocked reads the own table; the caller must hold o.mu.
func (o *Object) ownLocked(name string) (Descriptor, bool) {
	d, ok := o.props[name]
	return d, ok
}

// OwnDescriptor returns the own descriptor for name, if present.
func (o *Object) OwnDescriptor(name string) (Descriptor, bool) { return o.own(name) }

// HasOwn reports whether the object itself holds a property called name,
// ignoring the prototype chain.
func (o *Object) HasOwn(name string) bool {
	_, ok := o.own(name)
	return ok
}

// Get resolves name starting at the receiver and walking the prototype
// chain. Accessor slots fire with the receiver, not with the object the
// slot was found on.
func (o *Object) Get(name string) (any, error) {
	if name == "" {
		return nil, errors.ErrEmptyName
	}
	for cur := o; cur != nil; cur = cur.proto {
		d, ok := cur.own(name)
		if !ok {
			continue
		}
		if d.Get != nil {
			// Fired outside cur's lock: the getter may write to the
			// receiver's own table.
			return d.Get(o)
		}
		return d.Value, nil
	}
	return nil, errorc.With(
		errors.ErrPropertyNotFound,
		errorc.String(errors.ErrorFieldProperty, name),
	)
}

// Set writes an own data property, shadowing any prototype entry with the
// same name. Writing over an own accessor slot is rejected: accessor slots
// have no setter.
func (o *Object) Set(name string, value any) error {
	if name == "" {
		return errors.ErrEmptyName
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.frozen {
		return errorc.With(
			errors.ErrFrozenObject,
			errorc.String(errors.ErrorFieldProperty, name),
		)
	}
	if d, ok := o.props[name]; ok {
		if d.Get != nil || !d.Writable {
			return errorc.With(
				errors.ErrNotWritable,
				errorc.String(errors.ErrorFieldProperty, name),
			)
		}
		d.Value = value
		o.props[name] = d
		return nil
	}
	if o.props == nil {
		o.props = make(map[string]Descriptor)
	}
	o.props[name] = Descriptor{Value: value, Enumerable: true, Writable: true, Configurable: true}
	return nil
}

// DefineOwn installs or replaces an own property descriptor.
func (o *Object) DefineOwn(name string, d Descriptor) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.defineOwnLocked(name, d)
}

// defineOwnLocked installs a descriptor; the caller must hold o.mu.
func (o *Object) defineOwnLocked(name string, d Descriptor) error {
	if name == "" {
		return errors.ErrEmptyName
	}
	if o.frozen {
		return errorc.With(
			errors.ErrFrozenObject,
			errorc.String(errors.ErrorFieldProperty, name),
		)
	}
	if prev, ok := o.props[name]; ok && !prev.Configurable {
		return errorc.With(
			errors.ErrNotConfigurable,
			errorc.String(errors.ErrorFieldProperty, name),
		)
	}
	if o.props == nil {
		o.props = make(map[string]Descriptor)
	}
	o.props[name] = d
	return nil
}

// Delete removes an own property.
func (o *Object) Delete(name string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.frozen {
		return errorc.With(
			errors.ErrFrozenObject,
			errorc.String(errors.ErrorFieldProperty, name),
		)
	}
	d, ok := o.props[name]
	if !ok {
		return errorc.With(
			errors.ErrPropertyNotFound,
			errorc.String(errors.ErrorFieldProperty, name),
		)
	}
	if !d.Configurable {
		return errorc.With(
			errors.ErrNotConfigurable,
			errorc.String(errors.ErrorFieldProperty, name),
		)
	}
	delete(o.props, name)
	return nil
}

// Freeze makes the own-property table immutable. Subsequent writes,
// defines, and deletes fail; lookups are unaffected.
func (o *Object) Freeze() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.frozen = true
}

// Frozen reports whether Freeze has been called.
func (o *Object) Frozen() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.frozen
}

// OwnNames returns the sorted names of enumerable own properties.
func (o *Object) OwnNames() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	var names []string
	for name, d := range o.props {
		if d.Enumerable {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
