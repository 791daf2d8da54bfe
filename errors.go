package actions

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotConnected is returned when disconnecting a handler that is no
// longer registered.
var ErrNotConnected = errors.New("handler is not connected")

// ErrNotAFunction is returned when a connected value is not callable:
// it is neither a func value nor a Handler carrying an explicit callable.
var ErrNotAFunction = errors.New("handler must be a function")

// ArityMismatchError reports a parameter or argument count that does not
// match an action's declared arity. Handler identifies the offending
// handler and is empty for invoke-time argument counts.
type ArityMismatchError struct {
	Handler  string
	Expected int
	Got      int
}

func (e *ArityMismatchError) Error() string {
	if e.Handler != "" {
		return fmt.Sprintf("handler %s: argument count mismatch: expected %d, got %d",
			e.Handler, e.Expected, e.Got)
	}
	return fmt.Sprintf("call argument count mismatch: expected %d, got %d", e.Expected, e.Got)
}

// TypeMismatchError reports a positional type that does not match the
// expected type under the error safety level. Handler identifies the
// offending handler and is empty for invoke-time argument checks.
// Actual is nil when the argument was an untyped nil.
type TypeMismatchError struct {
	Handler  string
	Position int
	Expected reflect.Type
	Actual   reflect.Type
}

func (e *TypeMismatchError) Error() string {
	if e.Handler != "" {
		return fmt.Sprintf("handler %s: argument type mismatch at position %d: expected '%s', got '%s'",
			e.Handler, e.Position, typeName(e.Expected), typeName(e.Actual))
	}
	return fmt.Sprintf("call argument type mismatch at position %d: expected '%s', got '%s'",
		e.Position, typeName(e.Expected), typeName(e.Actual))
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
