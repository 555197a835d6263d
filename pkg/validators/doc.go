// Package validators maps raw field values to validation verdicts.
//
// Validators are pure functions: they never mutate their input, never keep
// state between calls and never fail with an error. A failed check is
// reported as data through ValidationResult so callers can show the message
// next to the offending field.
//
//	res := validators.Name.Apply(input)
//	if !res.Valid {
//		fmt.Println(res.ErrorMsg)
//	}
package validators
