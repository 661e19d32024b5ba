package bound

import (
	"github.com/ygrebnov/bound/constants"
)

// Class is a named prototype holding shared method declarations. Methods
// are declared once on the class and reached by every instance through the
// prototype link.
type Class struct {
	name  string
	proto *Object
}

// NewClass creates a class with an empty prototype.
func NewClass(name string) *Class {
	c := &Class{name: name}
	c.proto = newObject(c, nil)
	return c
}

// baseClass is the shared class of plain objects. The default eligibility
// guard refuses to bind methods to its instances.
var baseClass = NewClass(constants.BaseClassName)

// Base returns the shared base class assigned to plain objects.
func Base() *Class { return baseClass }

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Prototype returns the shared object methods are declared on.
func (c *Class) Prototype() *Object { return c.proto }

// Define declares a method on the class prototype. Method slots are
// non-enumerable, writable, and configurable.
func (c *Class) Define(name string, fn CallFunc) (*Function, error) {
	return c.define(name, fn, false)
}

// DefineEnumerable declares a method whose slot is enumerable.
func (c *Class) DefineEnumerable(name string, fn CallFunc) (*Function, error) {
	return c.define(name, fn, true)
}

func (c *Class) define(name string, fn CallFunc, enumerable bool) (*Function, error) {
	f, err := NewFunction(name, fn)
	if err != nil {
		return nil, err
	}
	d := Descriptor{Value: f, Enumerable: enumerable, Writable: true, Configurable: true}
	if err = c.proto.DefineOwn(name, d); err != nil {
		return nil, err
	}
	return f, nil
}

// Decorate applies a method decorator to an existing declaration. Runs
// once per class definition, not per instance.
func (c *Class) Decorate(name string, dec Decorator) error {
	return dec.Decorate(c.proto, name)
}

// New creates an instance whose prototype is the class prototype.
func (c *Class) New() *Object {
	return newObject(c, c.proto)
}
