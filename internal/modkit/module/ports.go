package module

import (
	"fmt"
	"reflect"
)

// PortsOf pulls an interface T out of a module's Ports() bundle
// the bundle itself or one of its exported struct fields must implement T
func PortsOf[T any](m Module) (t T, ok bool) {
	if m == nil {
		return t, false
	}
	p := m.Ports()
	if p == nil {
		return t, false
	}
	if v, ok2 := p.(T); ok2 {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return t, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return t, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if f.Kind() == reflect.Interface && f.IsNil() {
			continue
		}
		if v, ok2 := f.Interface().(T); ok2 {
			return v, true
		}
	}
	return t, false
}

// Find returns the first port implementing T across mods, in order
// a missing port names the wanted type so bootstrap failures are readable
func Find[T any](mods ...Module) (T, error) {
	for _, m := range mods {
		if v, ok := PortsOf[T](m); ok {
			return v, nil
		}
	}
	var zero T
	names := make([]string, 0, len(mods))
	for _, m := range mods {
		if m != nil {
			names = append(names, m.Name())
		}
	}
	return zero, fmt.Errorf("module: no port %s among %v", reflect.TypeFor[T](), names)
}
