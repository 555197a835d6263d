package formstate

import "github.com/goliatone/go-formstate/pkg/validators"

// FieldName identifies a form field.
type FieldName string

const (
	FirstName FieldName = "firstName"
	LastName  FieldName = "lastName"
)

// PersonFields returns the fields of the person form.
func PersonFields() []FieldName {
	return []FieldName{FirstName, LastName}
}

// Field pairs a raw value with its last validation verdict. A nil Valid
// means the current value has not been evaluated yet.
type Field struct {
	Value    any    `json:"value" yaml:"value"`
	Valid    *bool  `json:"valid,omitempty" yaml:"valid,omitempty"`
	ErrorMsg string `json:"errorMsg,omitempty" yaml:"errorMsg,omitempty"`
}

// Evaluated reports whether a verdict exists for the current value.
func (f *Field) Evaluated() bool {
	return f != nil && f.Valid != nil
}

// IsValid reports whether the field has been evaluated as valid.
func (f *Field) IsValid() bool {
	return f != nil && f.Valid != nil && *f.Valid
}

// Apply records a validation verdict.
func (f *Field) Apply(res validators.ValidationResult) {
	if f == nil {
		return
	}
	valid := res.Valid
	f.Valid = &valid
	if valid {
		f.ErrorMsg = ""
		return
	}
	f.ErrorMsg = res.ErrorMsg
	if f.ErrorMsg == "" {
		f.ErrorMsg = validators.InvalidMessage
	}
}

// Reset marks the field as unevaluated.
func (f *Field) Reset() {
	if f == nil {
		return
	}
	f.Valid = nil
	f.ErrorMsg = ""
}

// Form maps field names to their entries.
type Form map[FieldName]*Field

// AllValid folds over every entry and reports whether each one has been
// evaluated as valid. An empty form is valid.
func AllValid(form Form) bool {
	result := true
	for _, field := range form {
		result = result && field.IsValid()
	}
	return result
}
