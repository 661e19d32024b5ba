package bound

import (
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"
)

func TestBindingError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		be      BindingError
		wantHas []string // substrings that must be present
		wantNot []string // substrings that must be absent
	}{
		{
			name: "with phase and non-nil cause",
			be: BindingError{
				Property: "increment",
				Phase:    "bind",
				Err:      stderrors.New("binding rejected"),
			},
			wantHas: []string{"increment", "binding rejected", "(phase bind)"},
		},
		{
			name: "without phase and non-nil cause",
			be: BindingError{
				Property: "increment",
				Err:      stderrors.New("value is not callable"),
			},
			wantHas: []string{"increment", "value is not callable"},
			wantNot: []string{"(phase"},
		},
		{
			name: "with phase and nil cause (should still include property and phase, no panic)",
			be: BindingError{
				Property: "m",
				Phase:    "define",
			},
			wantHas: []string{"m", "(phase define)"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.be.Error()
			for _, s := range tt.wantHas {
				if !strings.Contains(got, s) {
					t.Errorf("Error() = %q; want it to contain %q", got, s)
				}
			}
			for _, s := range tt.wantNot {
				if strings.Contains(got, s) {
					t.Errorf("Error() = %q; want it to not contain %q", got, s)
				}
			}
		})
	}
}

func TestBindingError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("underlying")
	be := &BindingError{Property: "m", Phase: "bind", Err: cause}
	if !stderrors.Is(be, cause) {
		t.Error("errors.Is does not reach the cause")
	}
	var target *BindingError
	if !stderrors.As(error(be), &target) {
		t.Error("errors.As does not match *BindingError")
	}
}

func TestBindingError_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("full", func(t *testing.T) {
		t.Parallel()
		be := BindingError{Property: "increment", Phase: "define", Err: stderrors.New("object is frozen")}
		raw, err := json.Marshal(be)
		if err != nil {
			t.Fatalf("Marshal error: %v", err)
		}
		var got map[string]string
		if err = json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("Unmarshal error: %v", err)
		}
		want := map[string]string{
			"property": "increment",
			"phase":    "define",
			"message":  "object is frozen",
		}
		for k, v := range want {
			if got[k] != v {
				t.Errorf("json[%q] = %q; want %q", k, got[k], v)
			}
		}
	})

	t.Run("nil cause and empty phase", func(t *testing.T) {
		t.Parallel()
		be := BindingError{Property: "m"}
		raw, err := json.Marshal(be)
		if err != nil {
			t.Fatalf("Marshal error: %v", err)
		}
		s := string(raw)
		if strings.Contains(s, "phase") {
			t.Errorf("json = %s; empty phase should be omitted", s)
		}
		if !strings.Contains(s, `"message":""`) {
			t.Errorf("json = %s; want empty message", s)
		}
	})
}
