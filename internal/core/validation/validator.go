// Package validation implements the business-rule engine for payments: a
// generic runner that evaluates named checks against a data bundle and
// collects the failure messages of every check that did not hold.
package validation

// Check is a single named business rule. Valid returns true when the
// invariant HOLDS; a false result contributes Message to the failure list.
type Check[T any] struct {
	Message string
	Valid   func(T) bool
}

// RuleSet is an ordered list of checks over one bundle shape. Rule sets are
// stateless and side-effect-free; construct once and reuse.
type RuleSet[T any] struct {
	checks []Check[T]
}

// NewRuleSet builds a RuleSet from checks in declaration order.
func NewRuleSet[T any](checks ...Check[T]) RuleSet[T] {
	return RuleSet[T]{checks: checks}
}

// Validate evaluates every check against data and returns the messages of
// the failed ones, in declaration order. It never short-circuits: callers
// always get the complete list.
func (r RuleSet[T]) Validate(data T) []string {
	var failures []string
	for _, check := range r.checks {
		if !check.Valid(data) {
			failures = append(failures, check.Message)
		}
	}
	return failures
}
