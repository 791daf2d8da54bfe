package actions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Allorak/actions"
)

func TestTypeSafetyLevel_ZeroValueFailsLoud(t *testing.T) {
	var level actions.TypeSafetyLevel
	assert.Equal(t, actions.SafetyError, level)
}

func TestTypeSafetyLevel_String(t *testing.T) {
	assert.Equal(t, "error", actions.SafetyError.String())
	assert.Equal(t, "warning", actions.SafetyWarning.String())
	assert.Equal(t, "none", actions.SafetyNone.String())
}

func TestParseTypeSafetyLevel(t *testing.T) {
	cases := map[string]actions.TypeSafetyLevel{
		"error":   actions.SafetyError,
		"ERROR":   actions.SafetyError,
		"warning": actions.SafetyWarning,
		"warn":    actions.SafetyWarning,
		"none":    actions.SafetyNone,
		"off":     actions.SafetyNone,
		" none ":  actions.SafetyNone,
	}
	for input, want := range cases {
		level, err := actions.ParseTypeSafetyLevel(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, level, "input %q", input)
	}

	_, err := actions.ParseTypeSafetyLevel("loud")
	assert.Error(t, err)
}
