// Package typecheck implements the positional compatibility rules between
// an action's expected argument types and a handler's declared parameters.
//
// The checks only ever inspect the first len(expected) positions, so a
// handler declaring extra trailing parameters is considered compatible.
// This keeps the tolerance rule testable in isolation from registration
// mechanics.
package typecheck

import "reflect"

// Mismatch describes one position where a declared or runtime type
// diverges from the expected type. Actual is nil when the position was
// missing or held an untyped nil.
type Mismatch struct {
	Position int
	Expected reflect.Type
	Actual   reflect.Type
}

// Accepts reports whether a parameter declared as param can receive every
// value of type expected. The rule is Go assignability: identical types,
// or expected assignable to param (an interface the expected type
// satisfies, including any).
func Accepts(param, expected reflect.Type) bool {
	if param == nil || expected == nil {
		return false
	}
	return expected.AssignableTo(param)
}

// Params compares expected types against declared parameter types and
// returns every positional mismatch. Positions beyond len(expected) are
// never inspected.
func Params(expected, params []reflect.Type) []Mismatch {
	var ms []Mismatch
	for i, want := range expected {
		if i >= len(params) {
			ms = append(ms, Mismatch{Position: i, Expected: want})
			continue
		}
		if !Accepts(params[i], want) {
			ms = append(ms, Mismatch{Position: i, Expected: want, Actual: params[i]})
		}
	}
	return ms
}

// Compatible is the predicate form of Params plus the arity rule: a
// handler is compatible when it declares at least len(expected) parameters
// and every checked position accepts the expected type.
func Compatible(expected, params []reflect.Type) bool {
	if len(params) < len(expected) {
		return false
	}
	return len(Params(expected, params)) == 0
}

// Args compares expected types against runtime argument values and
// returns every positional mismatch. An untyped nil argument only
// satisfies a nilable expected type.
func Args(expected []reflect.Type, args []any) []Mismatch {
	var ms []Mismatch
	for i, want := range expected {
		if i >= len(args) {
			ms = append(ms, Mismatch{Position: i, Expected: want})
			continue
		}
		got := reflect.TypeOf(args[i])
		if got == nil {
			if !nilable(want) {
				ms = append(ms, Mismatch{Position: i, Expected: want})
			}
			continue
		}
		if !got.AssignableTo(want) {
			ms = append(ms, Mismatch{Position: i, Expected: want, Actual: got})
		}
	}
	return ms
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	default:
		return false
	}
}
