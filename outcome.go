package bound

// Kind tags a resolution state. PrototypeAccess, ExistingBinding,
// DefinedBinding, and Error are terminal; Initial and Created appear only
// on the audit trail reachable through Prev.
type Kind uint8

const (
	KindInitial Kind = iota
	KindCreated
	KindPrototypeAccess
	KindExistingBinding
	KindDefinedBinding
	KindError
)

var kindNames = [...]string{
	KindInitial:         "initial",
	KindCreated:         "created",
	KindPrototypeAccess: "prototype_access",
	KindExistingBinding: "existing_binding",
	KindDefinedBinding:  "defined_binding",
	KindError:           "error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Outcome is the closed result union of one resolution pass. Fn is set for
// the three successful kinds; Err and Phase for KindError. Seq is a
// monotonic stamp; Prev links to the state that produced this one, forming
// a linear trail discarded together with the outcome. Outcomes are built
// fresh per access and never cached.
type Outcome struct {
	Kind  Kind
	Fn    *Function
	Err   error
	Phase string
	Seq   uint64
	Prev  *Outcome
}

// Terminal reports whether the outcome ends a resolution pass.
func (o *Outcome) Terminal() bool {
	switch o.Kind {
	case KindPrototypeAccess, KindExistingBinding, KindDefinedBinding, KindError:
		return true
	}
	return false
}
