package models

import (
	"fmt"
	"strings"
)

// Violation describes a single failed field constraint.
//
// Validation never touches presentation. Callers decide how to surface the
// list, the API joins it into one message.
type Violation struct {
	Field   string `json:"field" example:"name"`                       // The field that failed validation
	Message string `json:"message" example:"name must not be empty"`   // Why the field failed validation
}

// Violations is the result of validating a resource. An empty list means the
// resource is valid.
type Violations []Violation

// Error joins all violations into a single message.
func (v Violations) Error() string {
	messages := make([]string, 0, len(v))
	for _, violation := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", violation.Field, violation.Message))
	}

	return strings.Join(messages, ", ")
}

// Empty reports whether there are no violations.
func (v Violations) Empty() bool {
	return len(v) == 0
}
