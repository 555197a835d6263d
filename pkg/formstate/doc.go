// Package formstate holds the value and validity of a fixed set of form
// fields and derives a single aggregate from them.
//
// The aggregate is never stored. AllValid folds over every field on each
// read, so the field entries remain the only source of truth:
//
//	store := formstate.NewPersonForm()
//	_ = store.SetValue(formstate.FirstName, "Ada")
//	_, _ = store.Validate(formstate.FirstName, validators.Name)
//	store.IsAllValid() // false, lastName has not been evaluated
//
// A Store is created once per session with every field it will ever hold.
// It is not safe for concurrent use.
package formstate
