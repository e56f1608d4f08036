// Package validator lints a machine's state/transition graph for issues
// that are legal to configure but rarely intended: unreachable states,
// dangling restart targets, timeouts shorter than the dwell floor.
package validator

import (
	"github.com/playloop/fsm"
)

// ValidationResult contains the results of validating a machine graph.
type ValidationResult struct {
	Valid    bool
	Errors   []Issue
	Warnings []Issue
}

// Issue describes one problem a rule found.
type Issue struct {
	Code    string      // Issue code like "UNREACHABLE_STATE"
	Message string      // Human-readable message
	State   fsm.StateID // State the issue concerns, or fsm.StateNone
}

// Rule checks a machine snapshot for a specific class of issue.
type Rule interface {
	Name() string
	Severity() Severity
	Check(snap fsm.Snapshot) []Issue
}

// Severity defines the severity level of a validation issue.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Validate runs the default rules against the machine's current graph.
func Validate(machine *fsm.Machine) ValidationResult {
	return ValidateSnapshot(machine.Snapshot(), DefaultRules())
}

// ValidateSnapshot runs rules against a captured snapshot.
func ValidateSnapshot(snap fsm.Snapshot, rules []Rule) ValidationResult {
	result := ValidationResult{
		Valid: true,
	}

	for _, rule := range rules {
		issues := rule.Check(snap)

		switch rule.Severity() {
		case SeverityError:
			result.Errors = append(result.Errors, issues...)
		case SeverityWarning:
			result.Warnings = append(result.Warnings, issues...)
		}
	}

	if len(result.Errors) > 0 {
		result.Valid = false
	}

	return result
}

// DefaultRules returns the standard set of validation rules.
func DefaultRules() []Rule {
	return []Rule{
		&emptyMachineRule{},
		&noInitialStateRule{},
		&unreachableStateRule{},
		&danglingRestartRule{},
		&timeoutBelowDwellRule{},
		&deadEndStateRule{},
	}
}
