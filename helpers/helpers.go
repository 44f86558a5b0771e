// Package helpers holds the runtime support used by code generated with
// beanfixture.
package helpers

import (
	"fmt"
	"reflect"
)

type withDebugMap interface {
	DebugMap() map[string]any
}

// DebugValue returns the debug value for the given raw Go value.
//
// Primitives are returned as-is and beans with a DebugMap method render as
// that map. Pointers are followed; a nil pointer renders as "nil". Maps and
// non-[]any slices render as their size, or with fmt's %v when fmtValue is
// set. Anything else renders as "(value)" unless fmtValue is set.
func DebugValue(value any, fmtValue bool) any {
	if value == nil {
		return "nil"
	}

	if value == "" {
		return "(empty)"
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "nil"
	}

	if wdm, ok := value.(withDebugMap); ok {
		return wdm.DebugMap()
	}

	switch rv.Kind() {
	case reflect.Pointer:
		return DebugValue(rv.Elem().Interface(), fmtValue)

	case reflect.Map:
		if rv.IsNil() {
			return "nil"
		}
		if fmtValue {
			return fmt.Sprintf("%v", value)
		}
		return fmt.Sprintf("(map of size %d)", rv.Len())

	case reflect.Slice:
		if rv.IsNil() {
			return "nil"
		}
		slce, ok := value.([]any)
		if !ok {
			if fmtValue {
				return fmt.Sprintf("%v", value)
			}
			return fmt.Sprintf("(slice of size %d)", rv.Len())
		}

		updated := make([]any, 0, len(slce))
		for _, vle := range slce {
			updated = append(updated, DebugValue(vle, fmtValue))
		}
		return updated

	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return value

	default:
		if fmtValue {
			return fmt.Sprintf("%v", value)
		}
		return "(value)"
	}
}

// SensitiveDebugValue returns the string "nil" if the value is nil, "(empty)"
// if empty and otherwise returns "(sensitive)".
func SensitiveDebugValue(value any) any {
	if value == nil {
		return "nil"
	}

	if value == "" {
		return "(empty)"
	}

	return "(sensitive)"
}

// Flatten inlines nested maps of debugMap using dot separated keys, so
// {"doctor": {"Company": "x"}} becomes {"doctor.Company": "x"}.
func Flatten(debugMap map[string]any) map[string]any {
	flattened := make(map[string]any, len(debugMap))
	for key, value := range debugMap {
		childMap, ok := value.(map[string]any)
		if ok {
			for fk, fv := range Flatten(childMap) {
				flattened[key+"."+fk] = fv
			}
			continue
		}

		flattened[key] = value
	}
	return flattened
}
