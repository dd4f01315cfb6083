// Package validation holds the per-entity submission rules. Every function
// is pure: it inspects a candidate record and returns the full list of
// violated rules, never just the first one. No I/O happens here.
package validation

import "strings"

// Rule identifies which constraint a violation broke
type Rule string

const (
	RuleRequired         Rule = "Required"
	RuleTooShort         Rule = "TooShort"
	RuleTooLong          Rule = "TooLong"
	RuleOutOfRange       Rule = "OutOfRange"
	RuleInvalidOrder     Rule = "InvalidOrder"
	RuleConflictingState Rule = "ConflictingState"
	RuleMissingState     Rule = "MissingState"
	RuleInvalidFormat    Rule = "InvalidFormat"
)

// Violation is a single broken rule on a single field
type Violation struct {
	Field   string `json:"field"`
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

// Violations collects every broken rule for one submission
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = violation.Message
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any violation broke the given rule on the given field
func (v Violations) Has(field string, rule Rule) bool {
	for _, violation := range v {
		if violation.Field == field && violation.Rule == rule {
			return true
		}
	}
	return false
}

// OrNil returns the collected violations as an error, or nil when the
// submission passed every rule
func (v Violations) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v *Violations) add(field string, rule Rule, message string) {
	*v = append(*v, Violation{Field: field, Rule: rule, Message: message})
}
