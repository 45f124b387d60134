package registry

import "reflect"

// Named is implemented by entities that can be indexed by a Registry.
//
// SetName is how the registry writes a resolved name back onto the entity,
// so implementations must use a pointer receiver (or otherwise share state)
// for the rename to be visible to the caller.
type Named interface {
	Name() string
	SetName(name string)
}

// NameBase is an embeddable implementation of Named.
//
//	type Worker struct {
//	    registry.NameBase
//	    Queue string
//	}
//
//	w := &Worker{NameBase: registry.MakeNameBase("ingest")}
type NameBase struct {
	name string
}

// MakeNameBase creates a NameBase with the given name.
func MakeNameBase(name string) NameBase {
	return NameBase{name: name}
}

// Name returns the current name.
func (b *NameBase) Name() string {
	return b.name
}

// SetName replaces the current name.
func (b *NameBase) SetName(name string) {
	b.name = name
}

// TypeName returns the simple name of v's dynamic type, with pointers
// dereferenced. Unnamed types fall back to their type literal.
//
//	TypeName(&Worker{}) // "Worker"
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// isNil reports whether v is nil or a typed nil pointer, map, slice, func,
// channel or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
