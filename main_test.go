package bound

import "testing"

// ---- Helpers ----

// incrementMethod increments this.count and returns the running total.
func incrementMethod(this *Object, _ ...any) (any, error) {
	v, err := this.Get("count")
	if err != nil {
		return nil, err
	}
	n := v.(int) + 1
	if err = this.Set("count", n); err != nil {
		return nil, err
	}
	return n, nil
}

// newCounterClass declares a Counter class with a decorated increment
// method and returns the class together with the original declaration.
func newCounterClass(t *testing.T) (*Class, *Function) {
	t.Helper()
	cls := NewClass("Counter")
	orig, err := cls.Define("increment", incrementMethod)
	if err != nil {
		t.Fatalf("Define error: %v", err)
	}
	if err = cls.Decorate("increment", Bound()); err != nil {
		t.Fatalf("Decorate error: %v", err)
	}
	return cls, orig
}

// newCounter creates a Counter instance with count initialized to zero.
func newCounter(t *testing.T, cls *Class) *Object {
	t.Helper()
	inst := cls.New()
	if err := inst.Set("count", 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	return inst
}

// getFunction reads name off obj and asserts the result is a *Function.
func getFunction(t *testing.T, obj *Object, name string) *Function {
	t.Helper()
	v, err := obj.Get(name)
	if err != nil {
		t.Fatalf("Get(%q) error: %v", name, err)
	}
	fn, ok := v.(*Function)
	if !ok {
		t.Fatalf("Get(%q) = %T; want *Function", name, v)
	}
	return fn
}
