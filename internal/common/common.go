package common

import "reflect"

// Decay strips pointer indirections from t so that value and pointer
// forms of the same underlying type classify identically.
func Decay(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// IsSequenceOf reports whether t is a slice or array with element type elem.
func IsSequenceOf(t, elem reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return t.Elem() == elem
	default:
		return false
	}
}

// Implements reports whether t or *t implements iface. Method sets
// differ between a type and its pointer, so both are consulted.
func Implements(t, iface reflect.Type) bool {
	if t.Implements(iface) {
		return true
	}
	return reflect.PointerTo(t).Implements(iface)
}

// MethodResult returns the sole result type of the named method on t or
// *t, or nil when no such method exists. The method is never called.
func MethodResult(t reflect.Type, name string) reflect.Type {
	if m, ok := t.MethodByName(name); ok && m.Type.NumOut() == 1 {
		return m.Type.Out(0)
	}
	if m, ok := reflect.PointerTo(t).MethodByName(name); ok && m.Type.NumOut() == 1 {
		return m.Type.Out(0)
	}
	return nil
}
