// Package validation summarizes a form store into a list of field issues.
package validation

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formstate/pkg/formstate"
)

// NotEvaluatedMessage describes a field whose value was never validated.
const NotEvaluatedMessage = "Not evaluated."

// Issue represents a field that keeps the form from being valid.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Report captures the aggregate and the per-field issues behind it.
type Report struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// FromStore builds a report in field-name order. Valid always equals
// store.IsAllValid().
func FromStore(store *formstate.Store) Report {
	report := Report{Valid: store.IsAllValid()}
	for _, name := range store.Names() {
		field, _ := store.Field(name)
		switch {
		case field.IsValid():
			continue
		case field.Evaluated():
			report.Issues = append(report.Issues, Issue{Field: string(name), Message: field.ErrorMsg})
		default:
			report.Issues = append(report.Issues, Issue{Field: string(name), Message: NotEvaluatedMessage})
		}
	}
	return report
}

// Err returns nil for a valid report, otherwise an error listing issues.
func (r Report) Err() error {
	if r.Valid {
		return nil
	}
	if len(r.Issues) == 0 {
		return fmt.Errorf("validation failed")
	}
	parts := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(parts, "; "))
}
