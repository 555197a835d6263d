package validators

import "reflect"

// RequiredMessage is surfaced by Required when a value is missing.
const RequiredMessage = "Required field."

// InvalidMessage fills in for validators that fail without a message.
const InvalidMessage = "Invalid value."

// ValidationResult is the verdict returned by a Validator. ErrorMsg is set
// only when Valid is false.
type ValidationResult struct {
	Valid    bool   `json:"valid" yaml:"valid"`
	ErrorMsg string `json:"errorMsg,omitempty" yaml:"errorMsg,omitempty"`
}

// Validator maps a raw candidate value to a ValidationResult.
type Validator func(value any) ValidationResult

// Pass returns a successful result.
func Pass() ValidationResult {
	return ValidationResult{Valid: true}
}

// Fail returns a failed result carrying msg.
func Fail(msg string) ValidationResult {
	return ValidationResult{Valid: false, ErrorMsg: msg}
}

// Required fails for false booleans and for values whose length is zero.
// Values without a length measure (numbers, structs, non-nil funcs) pass.
// A nil value, nil pointer, nil interface or nil func is treated as missing.
func Required(value any) ValidationResult {
	switch typed := value.(type) {
	case nil:
		return Fail(RequiredMessage)
	case bool:
		if !typed {
			return Fail(RequiredMessage)
		}
		return Pass()
	case string:
		if len(typed) <= 0 {
			return Fail(RequiredMessage)
		}
		return Pass()
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Fail(RequiredMessage)
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Func:
		if rv.IsNil() {
			return Fail(RequiredMessage)
		}
	case reflect.Bool:
		if !rv.Bool() {
			return Fail(RequiredMessage)
		}
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		if rv.Len() <= 0 {
			return Fail(RequiredMessage)
		}
	}
	return Pass()
}
