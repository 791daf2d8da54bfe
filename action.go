package actions

import (
	"log/slog"
	"reflect"

	"github.com/Allorak/actions/internal/logging"
	"github.com/Allorak/actions/internal/typecheck"
)

// Version is the library version, reported by the actions CLI.
const Version = "0.8.0"

// Action is a named event slot declared with a fixed ordered list of
// expected argument types. Handlers connect to it and are dispatched, in
// connection order, every time the action is invoked.
//
// An Action is single-threaded by contract: Connect and Invoke are plain
// blocking calls and the handler list is read during dispatch without
// snapshotting. Embedders in concurrent hosts must guard both with their
// own synchronization.
type Action struct {
	expected      []reflect.Type
	connectSafety TypeSafetyLevel
	invokeSafety  TypeSafetyLevel
	logger        *slog.Logger

	handlers []registration
	lastID   uint64
}

type registration struct {
	id      uint64
	handler Handler
}

// Option configures an Action at construction time.
type Option func(*Action)

// WithLogger sets the diagnostic sink used for SafetyWarning reports.
// The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Action) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithConnectSafety sets the enforcement level applied by Connect.
func WithConnectSafety(level TypeSafetyLevel) Option {
	return func(a *Action) { a.connectSafety = level }
}

// WithInvokeSafety sets the enforcement level applied by Invoke.
func WithInvokeSafety(level TypeSafetyLevel) Option {
	return func(a *Action) { a.invokeSafety = level }
}

// WithSafety sets both enforcement points to the same level.
func WithSafety(level TypeSafetyLevel) Option {
	return func(a *Action) {
		a.connectSafety = level
		a.invokeSafety = level
	}
}

// New declares an action whose invocations carry arguments matching sig.
// The arity and expected types are fixed for the action's lifetime. Both
// enforcement points default to SafetyError.
func New(sig Signature, opts ...Option) *Action {
	a := &Action{
		expected: sig.Params(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ArgTypes returns a copy of the expected argument types.
func (a *Action) ArgTypes() []reflect.Type {
	return append([]reflect.Type(nil), a.expected...)
}

// HandlerCount returns the number of live registrations. A handler
// connected twice counts twice.
func (a *Action) HandlerCount() int { return len(a.handlers) }

// Connect validates handler against the expected argument types under the
// action's connect-time safety level and appends it to the dispatch list.
// Connecting the same handler again registers it again.
//
// handler is either a func value, whose signature is derived through
// reflection, or a prebuilt Handler carrying an explicit descriptor.
//
// Under SafetyNone the handler is registered without validation. Under
// SafetyWarning every arity or positional mismatch is reported through the
// diagnostic sink and the handler is registered anyway. Under SafetyError
// the first mismatch aborts with *ArityMismatchError or
// *TypeMismatchError and nothing is registered. A value that is not
// callable at all is rejected regardless of level, since there is nothing
// to register.
func (a *Action) Connect(handler any) (*Connection, error) {
	return a.ConnectWith(a.connectSafety, handler)
}

// ConnectWith is Connect with a one-off safety level for this call only.
func (a *Action) ConnectWith(level TypeSafetyLevel, handler any) (*Connection, error) {
	h, ok := handler.(Handler)
	if !ok {
		var err error
		h, err = NewHandler(handler)
		if err != nil {
			return nil, err
		}
	}
	if !h.callable() {
		return nil, ErrNotAFunction
	}
	if level != SafetyNone {
		if err := a.checkHandler(level, h); err != nil {
			return nil, err
		}
	}
	a.lastID++
	a.handlers = append(a.handlers, registration{id: a.lastID, handler: h})
	return &Connection{action: a, id: a.lastID}, nil
}

// Invoke validates args under the action's invoke-time safety level and,
// on success, calls every connected handler in connection order with the
// exact argument list.
//
// Under SafetyWarning a positional type mismatch is reported and dispatch
// proceeds with the argument unchanged. An argument count mismatch is
// fatal whenever validation runs: dispatch cannot call a fixed-arity
// function with the wrong count, so arity never follows the warning
// ladder. Under SafetyNone nothing is validated and any shape error
// surfaces from the first handler call.
//
// Dispatch is synchronous and fail-fast: the first handler returning a
// non-nil error aborts the remaining handlers and the error propagates
// unchanged to the caller. Invoking an action with no handlers is a no-op.
func (a *Action) Invoke(args ...any) error {
	return a.InvokeWith(a.invokeSafety, args...)
}

// InvokeWith is Invoke with a one-off safety level, independent of any
// level used at connect time.
func (a *Action) InvokeWith(level TypeSafetyLevel, args ...any) error {
	if level != SafetyNone {
		if len(args) != len(a.expected) {
			return &ArityMismatchError{Expected: len(a.expected), Got: len(args)}
		}
		if mismatches := typecheck.Args(a.expected, args); len(mismatches) > 0 {
			if level == SafetyError {
				m := mismatches[0]
				return &TypeMismatchError{Position: m.Position, Expected: m.Expected, Actual: m.Actual}
			}
			for _, m := range mismatches {
				a.logger.Warn("call argument mismatch",
					"position", m.Position,
					"expected", typeName(m.Expected),
					"actual", typeName(m.Actual),
				)
			}
		}
	}
	for _, reg := range a.handlers {
		if err := reg.handler.invoke(args); err != nil {
			return err
		}
	}
	return nil
}

// checkHandler runs the connect-time checks for h under level, which is
// SafetyWarning or SafetyError.
func (a *Action) checkHandler(level TypeSafetyLevel, h Handler) error {
	params, ok := h.Signature().ParamsFor(len(a.expected))
	if !ok {
		if level == SafetyWarning {
			a.logger.Warn("handler arity mismatch",
				"handler", h.Name(),
				"expected", len(a.expected),
				"declared", h.Signature().Len(),
			)
			return nil
		}
		return &ArityMismatchError{Handler: h.Name(), Expected: len(a.expected), Got: h.Signature().Len()}
	}
	mismatches := typecheck.Params(a.expected, params)
	if len(mismatches) == 0 {
		return nil
	}
	if level == SafetyWarning {
		for _, m := range mismatches {
			a.logger.Warn("handler signature mismatch",
				"handler", h.Name(),
				"position", m.Position,
				"expected", typeName(m.Expected),
				"actual", typeName(m.Actual),
			)
		}
		return nil
	}
	m := mismatches[0]
	return &TypeMismatchError{Handler: h.Name(), Position: m.Position, Expected: m.Expected, Actual: m.Actual}
}

func (a *Action) disconnect(id uint64) error {
	for i, reg := range a.handlers {
		if reg.id == id {
			a.handlers = append(a.handlers[:i], a.handlers[i+1:]...)
			return nil
		}
	}
	return ErrNotConnected
}
