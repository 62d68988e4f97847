package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule pairs a validator tag expression with the message reported when it fails.
type Rule struct {
	Tag     string
	Message string
}

// FieldRules lists the rules applied to one payload field.
type FieldRules struct {
	Field string
	Rules []Rule
}

// RuleTable is an ordered set of field rules applied outside the payload type.
type RuleTable []FieldRules

// FieldError reports the first failing rule of a field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every failing field of a payload.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fe.Message)
	}
	return strings.Join(messages, "; ")
}

// Validate runs the table against values. Fields missing from values are skipped,
// which is how omitted and null payload fields bypass their rules.
func (t RuleTable) Validate(v *validator.Validate, values map[string]interface{}) error {
	var errs ValidationErrors
	for _, fr := range t {
		value, ok := values[fr.Field]
		if !ok {
			continue
		}
		for _, rule := range fr.Rules {
			if err := v.Var(value, rule.Tag); err != nil {
				errs = append(errs, FieldError{Field: fr.Field, Message: rule.Message})
				break
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
