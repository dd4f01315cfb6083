package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	// Plausibility check only; deliverability is not this layer's problem.
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	slugPattern  = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
)

const minFreeTextLen = 10

func (v *Violations) requireText(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, RuleRequired, fmt.Sprintf("%s is required", field))
	}
}

func (v *Violations) requireEmail(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, RuleRequired, fmt.Sprintf("%s is required", field))
		return
	}
	if !emailPattern.MatchString(value) {
		v.add(field, RuleInvalidFormat, fmt.Sprintf("%s is not a valid email address", field))
	}
}

func (v *Violations) minLength(field, value string, min int) {
	if len(strings.TrimSpace(value)) < min {
		v.add(field, RuleTooShort, fmt.Sprintf("%s must be at least %d characters long", field, min))
	}
}

func (v *Violations) maxLength(field, value string, max int) {
	if len(value) > max {
		v.add(field, RuleTooLong, fmt.Sprintf("%s must be %d characters or less", field, max))
	}
}

func (v *Violations) intRange(field string, value, min, max int) {
	if value < min || value > max {
		v.add(field, RuleOutOfRange, fmt.Sprintf("%s must be between %d and %d", field, min, max))
	}
}

func (v *Violations) dateOrder(startField, endField string, start time.Time, end *time.Time) {
	if end != nil && !start.IsZero() && end.Before(start) {
		v.add(endField, RuleInvalidOrder, fmt.Sprintf("%s cannot be before %s", endField, startField))
	}
}

// currentOrEnded enforces the exclusive-or between an ongoing record and an
// explicit end date: exactly one of {current=true, end date present}.
func (v *Violations) currentOrEnded(current bool, end *time.Time, what string) {
	if current && end != nil {
		v.add("end_date", RuleConflictingState, fmt.Sprintf("cannot have both an end date and current %s set", what))
	}
	if !current && end == nil {
		v.add("end_date", RuleMissingState, fmt.Sprintf("either set an end date or mark the %s as current", what))
	}
}

func (v *Violations) slug(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, RuleRequired, fmt.Sprintf("%s is required", field))
		return
	}
	if !slugPattern.MatchString(value) {
		v.add(field, RuleInvalidFormat, fmt.Sprintf("%s can only contain letters, numbers, and hyphens", field))
	}
}
