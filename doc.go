/*
Package actions implements a typed event-dispatch primitive. An Action is a
named event slot declared with a fixed ordered list of expected argument
types; any number of handlers connect to it, and invoking the action calls
every connected handler, in connection order, with the supplied arguments.

Signatures are enforced at two independent points: when a handler connects
and when the action is invoked. Each point runs under a selectable
TypeSafetyLevel (SafetyNone, SafetyWarning, SafetyError) and both default
to SafetyError, so mismatches fail loud unless explicitly relaxed.

# Key Features

  - Positional validation: a handler's declared parameter types are checked
    against the action's expected types, and so are the runtime arguments
    of every invocation.
  - Selectable enforcement: skip checks, report them through an injected
    slog sink, or reject the offending call. Connect and invoke levels are
    configured independently.
  - Deterministic dispatch: handlers run synchronously in connection order,
    fail-fast on the first handler error.
  - Explicit descriptors: signatures derive from func values through
    reflection, or are supplied by hand for callables reflection cannot
    describe.

# Usage

	package main

	import (
		"fmt"
		"log"
		"reflect"

		"github.com/Allorak/actions"
	)

	func main() {
		scored := actions.New(actions.NewSignature(
			reflect.TypeFor[string](),
			reflect.TypeFor[int](),
		))

		conn, err := scored.Connect(func(name string, points int) {
			fmt.Printf("%s scored %d\n", name, points)
		})
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Disconnect()

		if err := scored.Invoke("alice", 10); err != nil {
			log.Fatal(err)
		}
	}

Actions are not safe for concurrent use. A host embedding them in a
multi-threaded program must serialize Connect, Disconnect and Invoke.
*/
package actions
