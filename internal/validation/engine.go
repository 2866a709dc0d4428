package validation

import "strings"

// Rule binds a field name to its kind. Optional fields may be absent or empty;
// when present they must still match the grammar.
type Rule struct {
	Field    string
	Kind     Kind
	Optional bool
}

// RuleSet is an ordered list of rules. Fields are always evaluated in declared
// order so error reporting is deterministic and never data-dependent.
type RuleSet []Rule

// Result is the outcome of validating one record. Exactly one of Normalized
// (when Accepted) or Errors (when not) is meaningful.
type Result struct {
	Accepted   bool
	Normalized map[string]string
	Errors     map[string]string
}

// Validate applies the rule set to a record and returns either the normalized
// record or one error per failing field. It always evaluates every rule so a
// caller can report all problems at once. Fields absent from the rule set are
// dropped: nothing passes through that was not explicitly declared.
func Validate(record map[string]string, rules RuleSet) Result {
	normalized := make(map[string]string, len(rules))
	errs := make(map[string]string)

	for _, rule := range rules {
		value := rule.Kind.Normalize(strings.TrimSpace(record[rule.Field]))

		if value == "" {
			if rule.Optional {
				normalized[rule.Field] = ""
				continue
			}
			errs[rule.Field] = rule.Field + " " + rule.Kind.Message()
			continue
		}

		if !rule.Kind.Matches(value) {
			errs[rule.Field] = rule.Field + " " + rule.Kind.Message()
			continue
		}
		normalized[rule.Field] = value
	}

	if len(errs) > 0 {
		return Result{Accepted: false, Errors: errs}
	}
	return Result{Accepted: true, Normalized: normalized}
}
