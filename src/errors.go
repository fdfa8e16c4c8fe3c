package trainpolicy

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// POLICY ERROR TYPES
// One error type for every rejection, carrying enough context for a message
// =============================================================================

// ErrorKind classifies a PolicyError
type ErrorKind int

const (
	// InvalidArgument is a caller contract violation (unknown enum value)
	InvalidArgument ErrorKind = iota
	// InvalidConfig is a RateConfig field outside its domain
	InvalidConfig
	// BatchNormBatchSizeConflict rejects N == 1 on a batch-normalized model
	BatchNormBatchSizeConflict
	// InvalidResumeEpoch rejects a resume point outside the schedule
	InvalidResumeEpoch
	// InvalidState rejects a session transition not allowed from the current state
	InvalidState
)

var kindNames = [...]string{
	InvalidArgument:            "invalid argument",
	InvalidConfig:              "invalid config",
	BatchNormBatchSizeConflict: "batch norm batch size conflict",
	InvalidResumeEpoch:         "invalid resume epoch",
	InvalidState:               "invalid state",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

// UserRecoverable reports whether the user can fix the rejection by editing
// the configuration. InvalidArgument is a programming error.
func (k ErrorKind) UserRecoverable() bool {
	return k != InvalidArgument
}

// PolicyError is the standard error type for trainpolicy
type PolicyError struct {
	Component string    // "OptimizerPolicy", "StartupGate", etc.
	Kind      ErrorKind // rejection class
	Field     string    // offending RateConfig field or ""
	Value     string    // offending value, formatted
	Expected  string    // what was expected
	Cause     string    // human-readable cause
}

// Error implements the error interface
func (e *PolicyError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "trainpolicy: %s %s", e.Component, e.Kind)
	if e.Field != "" {
		fmt.Fprintf(&b, " on %s", e.Field)
	}

	if e.Value != "" {
		fmt.Fprintf(&b, "\n  value:    %s", e.Value)
	}
	if e.Expected != "" {
		fmt.Fprintf(&b, "\n  expected: %s", e.Expected)
	}
	if e.Cause != "" {
		fmt.Fprintf(&b, "\n  cause:    %s", e.Cause)
	}

	return b.String()
}

// IsKind reports whether err is a PolicyError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var pe *PolicyError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Kind == kind
}

// KindOf returns the kind of a PolicyError in err's chain
func KindOf(err error) (ErrorKind, bool) {
	var pe *PolicyError
	if !errors.As(err, &pe) {
		return 0, false
	}
	return pe.Kind, true
}

func invalidArgument(component, field string, value interface{}) error {
	return &PolicyError{
		Component: component,
		Kind:      InvalidArgument,
		Field:     field,
		Value:     fmt.Sprint(value),
		Cause:     "value is not a member of the enumeration",
	}
}

func invalidConfig(field string, value interface{}, expected string) error {
	return &PolicyError{
		Component: "RateConfig",
		Kind:      InvalidConfig,
		Field:     field,
		Value:     fmt.Sprint(value),
		Expected:  expected,
		Cause:     fmt.Sprintf("%s must be %s", field, expected),
	}
}

// errorf creates a formatted error
func errorf(format string, args ...interface{}) error {
	return fmt.Errorf("trainpolicy: "+format, args...)
}
