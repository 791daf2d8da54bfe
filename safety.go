package actions

import (
	"fmt"
	"strings"
)

// TypeSafetyLevel controls how a signature or argument mismatch is handled
// at one of the two enforcement points (connect and invoke).
//
// The zero value is SafetyError, so an unspecified level fails loud and a
// signature drift is never silently absorbed.
type TypeSafetyLevel int

const (
	// SafetyError validates and rejects mismatches.
	SafetyError TypeSafetyLevel = iota
	// SafetyWarning validates and reports mismatches through the
	// diagnostic sink, but never blocks registration or dispatch.
	SafetyWarning
	// SafetyNone skips validation entirely.
	SafetyNone
)

func (l TypeSafetyLevel) String() string {
	switch l {
	case SafetyError:
		return "error"
	case SafetyWarning:
		return "warning"
	case SafetyNone:
		return "none"
	default:
		return fmt.Sprintf("TypeSafetyLevel(%d)", int(l))
	}
}

// ParseTypeSafetyLevel converts a textual level into a TypeSafetyLevel.
// Matching is case-insensitive; "warn" and "off" are accepted aliases.
func ParseTypeSafetyLevel(s string) (TypeSafetyLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SafetyError, nil
	case "warning", "warn":
		return SafetyWarning, nil
	case "none", "off":
		return SafetyNone, nil
	}
	return SafetyError, fmt.Errorf("unknown type safety level: %q", s)
}
