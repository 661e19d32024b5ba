package constants

const Namespace = "bound"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// Resolution phases reported on binding failures.
const (
	PhaseBind   = "bind"
	PhaseDefine = "define"
)

// BaseClassName is the name of the shared base class assigned to plain
// objects created without an explicit class.
const BaseClassName = "Object"
