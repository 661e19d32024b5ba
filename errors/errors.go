package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/bound/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors for invalid requests and property-table misuses. Use
// errors.Is to match.
var (
	ErrNilObject        = namespace.NewError("nil object")
	ErrEmptyName        = namespace.NewError("empty property name")
	ErrNotCallable      = namespace.NewError("value is not callable")
	ErrPropertyNotFound = namespace.NewError("property not found")
	ErrNotWritable      = namespace.NewError("property is not writable")
	ErrNotConfigurable  = namespace.NewError("property is not configurable")
	ErrFrozenObject     = namespace.NewError("object is frozen")
	ErrBindingRejected  = namespace.NewError("binding rejected for target")
)

// Sentinel errors for the eligibility predicate registry.
var (
	ErrInvalidPredicate   = namespace.NewError("predicate must have non-empty name and non-nil function")
	ErrDuplicatePredicate = namespace.NewError("duplicate eligibility predicate")
	ErrPredicateNotFound  = namespace.NewError("eligibility predicate not found")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentProperty    = "property"
	keySegmentClass       = "class"
	keySegmentEligibility = "eligibility"
)

// Exported structured error field keys
var (
	ErrorFieldProperty  = newKey("name", keySegmentProperty)       // bound.property.name
	ErrorFieldValueType = newKey("value_type", keySegmentProperty) // bound.property.value_type
)

var (
	ErrorFieldPredicate = newKey("name", keySegmentEligibility) // bound.eligibility.name
)

var (
	ErrorFieldClassName = newKey("name", keySegmentClass) // bound.class.name
)

var (
	ErrorFieldPhase = newKey("phase")
	ErrorFieldCause = newKey("cause")
)
