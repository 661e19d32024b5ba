package bound

// Getter is an accessor fired with the object the property access went
// through, which may sit further down the prototype chain than the object
// the descriptor lives on.
type Getter func(receiver *Object) (any, error)

// Descriptor controls a single property slot: either a data slot (Value)
// or an accessor slot (Get), plus the attributes governing enumeration,
// assignment, and redefinition. Accessor slots have no setter.
type Descriptor struct {
	Value        any
	Get          Getter
	Enumerable   bool
	Writable     bool
	Configurable bool
}

// IsAccessor reports whether the descriptor is an accessor slot.
func (d Descriptor) IsAccessor() bool { return d.Get != nil }
