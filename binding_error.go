package bound

import (
	"encoding/json"
	"fmt"
)

// BindingError reports a failed binding attempt for a specific property.
// It implements error and unwraps to the underlying cause so callers can
// use errors.Is/As.
type BindingError struct {
	Property string // property name the access targeted
	Phase    string // resolution phase that failed: "bind" or "define"
	Err      error  // underlying cause
}

func (e BindingError) Error() string {
	if e.Phase != "" {
		return fmt.Sprintf("%s: %s (phase %s)", e.Property, e.Err, e.Phase)
	}
	return fmt.Sprintf("%s: %s", e.Property, e.Err)
}

func (e BindingError) Unwrap() error { return e.Err }

// MarshalJSON exports BindingError as an object with property, phase, and message fields.
func (e BindingError) MarshalJSON() ([]byte, error) {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return json.Marshal(struct {
		Property string `json:"property"`
		Phase    string `json:"phase,omitempty"`
		Message  string `json:"message"`
	}{
		Property: e.Property,
		Phase:    e.Phase,
		Message:  msg,
	})
}
