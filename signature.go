package actions

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Signature is the ordered list of parameter types a callable declares.
// Callers can build one by hand with NewSignature, or derive one from a
// func value with SignatureOf.
type Signature struct {
	params   []reflect.Type
	variadic bool
}

// NewSignature builds a fixed-arity signature from explicit type
// descriptors.
func NewSignature(params ...reflect.Type) Signature {
	return Signature{params: append([]reflect.Type(nil), params...)}
}

// SignatureOf derives the signature of fn through reflection. fn must be a
// func value.
func SignatureOf(fn any) (Signature, error) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return Signature{}, fmt.Errorf("%w, got %T", ErrNotAFunction, fn)
	}
	params := make([]reflect.Type, t.NumIn())
	for i := range params {
		params[i] = t.In(i)
	}
	return Signature{params: params, variadic: t.IsVariadic()}, nil
}

// Len returns the number of declared parameters. For variadic signatures
// the trailing slice counts as one.
func (s Signature) Len() int { return len(s.params) }

// Variadic reports whether the last parameter absorbs any number of
// trailing arguments.
func (s Signature) Variadic() bool { return s.variadic }

// Params returns a copy of the declared parameter types.
func (s Signature) Params() []reflect.Type {
	return append([]reflect.Type(nil), s.params...)
}

// ParamsFor returns the effective types of the first n positional
// parameters, expanding a variadic tail to its element type. It reports
// false when the signature declares fewer than n positions; declaring more
// is fine, the extras are simply not returned.
func (s Signature) ParamsFor(n int) ([]reflect.Type, bool) {
	if !s.variadic {
		if n > len(s.params) {
			return nil, false
		}
		return append([]reflect.Type(nil), s.params[:n]...), true
	}
	fixed := s.params[:len(s.params)-1]
	if n <= len(fixed) {
		return append([]reflect.Type(nil), fixed[:n]...), true
	}
	elem := s.params[len(s.params)-1].Elem()
	out := make([]reflect.Type, n)
	for i := 0; i < n; i++ {
		if i < len(fixed) {
			out[i] = fixed[i]
		} else {
			out[i] = elem
		}
	}
	return out, true
}

// String renders the signature like a Go parameter list, e.g.
// "(int, string)" or "(int, ...string)".
func (s Signature) String() string {
	names := make([]string, len(s.params))
	for i, p := range s.params {
		names[i] = typeName(p)
	}
	if s.variadic && len(names) > 0 {
		last := s.params[len(s.params)-1]
		names[len(names)-1] = "..." + typeName(last.Elem())
	}
	return "(" + strings.Join(names, ", ") + ")"
}

// Handler couples a callable with the signature used to validate it
// against an action's expected argument types.
type Handler struct {
	name string
	sig  Signature
	fn   reflect.Value           // reflection-derived handlers
	call func(args ...any) error // explicit-descriptor handlers
}

// NewHandler wraps a func value, deriving its signature through
// reflection. The func may return nothing, or a single error that aborts
// dispatch when non-nil; any other return shape is rejected.
func NewHandler(fn any) (Handler, error) {
	sig, err := SignatureOf(fn)
	if err != nil {
		return Handler{}, err
	}
	v := reflect.ValueOf(fn)
	t := v.Type()
	switch {
	case t.NumOut() == 0:
	case t.NumOut() == 1 && t.Out(0) == errorType:
	default:
		return Handler{}, fmt.Errorf("handler %s must return nothing or a single error", funcName(v))
	}
	return Handler{name: funcName(v), sig: sig, fn: v}, nil
}

// HandlerFunc builds a handler from an explicit signature descriptor and a
// generic callable. It is the escape hatch for callables reflection cannot
// describe, and the only kind of typed handler that can still receive
// mismatched arguments under the warning safety level.
func HandlerFunc(name string, sig Signature, fn func(args ...any) error) Handler {
	return Handler{name: name, sig: sig, call: fn}
}

// Name returns the handler identity used in diagnostics.
func (h Handler) Name() string { return h.name }

// Signature returns the declared parameter types.
func (h Handler) Signature() Signature { return h.sig }

func (h Handler) callable() bool { return h.call != nil || h.fn.IsValid() }

// invoke calls the underlying callable with args. Reflection-derived
// handlers reject a mismatched count or an unassignable argument with a
// structured error instead of panicking inside reflect.
func (h Handler) invoke(args []any) error {
	if h.call != nil {
		return h.call(args...)
	}
	t := h.fn.Type()
	if t.IsVariadic() {
		if len(args) < t.NumIn()-1 {
			return &ArityMismatchError{Handler: h.name, Expected: t.NumIn() - 1, Got: len(args)}
		}
	} else if len(args) != t.NumIn() {
		return &ArityMismatchError{Handler: h.name, Expected: t.NumIn(), Got: len(args)}
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := paramTypeAt(t, i)
		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(pt) {
			return &TypeMismatchError{Handler: h.name, Position: i, Expected: pt, Actual: av.Type()}
		}
		in[i] = av
	}
	out := h.fn.Call(in)
	if len(out) == 1 {
		if err, _ := out[0].Interface().(error); err != nil {
			return err
		}
	}
	return nil
}

func paramTypeAt(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}

func funcName(v reflect.Value) string {
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return "func"
}
