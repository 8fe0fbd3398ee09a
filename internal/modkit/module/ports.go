package module

import (
	"fmt"
	"reflect"
)

// PortsOf finds a T in m.Ports()
// the bundle itself is tried first, then the exported fields of a struct
// or pointer to struct bundle, in declaration order
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	bundle := m.Ports()
	if v, ok := bundle.(T); ok {
		return v, true
	}
	rv := reflect.Indirect(reflect.ValueOf(bundle))
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		if !rv.Type().Field(i).IsExported() {
			continue
		}
		if v, ok := rv.Field(i).Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for wiring done at startup, where a missing port is a bug
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("module %s exposes no %s port", m.Name(), reflect.TypeFor[T]()))
	}
	return v
}
