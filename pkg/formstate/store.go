package formstate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-formstate/pkg/validators"
)

var (
	// ErrUnknownField is returned when a field outside the store's fixed set
	// is addressed.
	ErrUnknownField = errors.New("formstate: unknown field")
	// ErrNilStore is returned by mutating methods called on a nil store.
	ErrNilStore = errors.New("formstate: store is nil")
)

// ChangeKind distinguishes value writes from verdict writes.
type ChangeKind string

const (
	ChangeValue  ChangeKind = "value"
	ChangeResult ChangeKind = "result"
)

// Change describes a mutation made through the Store.
type Change struct {
	Kind  ChangeKind
	Field FieldName
	Value any
	// Result is set for ChangeResult only.
	Result *validators.ValidationResult
}

// Store owns the field entries for one form session.
type Store struct {
	fields      Form
	subscribers map[int]func(Change)
	nextSub     int
}

// New creates a store holding exactly the named fields, each with an empty
// string value and no verdict. Duplicate names collapse into one entry.
func New(names ...FieldName) *Store {
	fields := make(Form, len(names))
	for _, name := range names {
		if _, ok := fields[name]; ok {
			continue
		}
		fields[name] = &Field{Value: ""}
	}
	return &Store{fields: fields}
}

// NewPersonForm creates a store for the firstName/lastName form.
func NewPersonForm() *Store {
	return New(PersonFields()...)
}

// Form returns the live mapping. Entries may be mutated directly; the
// aggregate reflects whatever the mapping holds at read time.
func (s *Store) Form() Form {
	if s == nil {
		return nil
	}
	return s.fields
}

// IsAllValid recomputes the aggregate over every field.
func (s *Store) IsAllValid() bool {
	if s == nil {
		return true
	}
	return AllValid(s.fields)
}

// Field returns the entry for name.
func (s *Store) Field(name FieldName) (*Field, bool) {
	if s == nil {
		return nil, false
	}
	field, ok := s.fields[name]
	return field, ok
}

// Names lists the fields in lexical order.
func (s *Store) Names() []FieldName {
	if s == nil {
		return nil
	}
	out := make([]FieldName, 0, len(s.fields))
	for name := range s.fields {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SetValue writes a new value and clears the previous verdict, since it no
// longer describes the value.
func (s *Store) SetValue(name FieldName, value any) error {
	field, err := s.lookup(name)
	if err != nil {
		return err
	}
	field.Value = value
	field.Reset()
	s.notify(Change{Kind: ChangeValue, Field: name, Value: value})
	return nil
}

// SetResult records a verdict for the field's current value.
func (s *Store) SetResult(name FieldName, res validators.ValidationResult) error {
	field, err := s.lookup(name)
	if err != nil {
		return err
	}
	field.Apply(res)
	s.notify(Change{Kind: ChangeResult, Field: name, Value: field.Value, Result: &res})
	return nil
}

// Validate runs chain over the field's current value and records the
// verdict.
func (s *Store) Validate(name FieldName, chain validators.Chain) (validators.ValidationResult, error) {
	field, err := s.lookup(name)
	if err != nil {
		return validators.ValidationResult{}, err
	}
	res := chain.Apply(field.Value)
	if err := s.SetResult(name, res); err != nil {
		return validators.ValidationResult{}, err
	}
	return res, nil
}

// ValidateAll validates every field with the chain registered for it in
// chains, falling back to def for fields without an entry. It reports the
// aggregate afterwards.
func (s *Store) ValidateAll(chains map[FieldName]validators.Chain, def validators.Chain) (bool, error) {
	for _, name := range s.Names() {
		chain, ok := chains[name]
		if !ok {
			chain = def
		}
		if _, err := s.Validate(name, chain); err != nil {
			return false, err
		}
	}
	return s.IsAllValid(), nil
}

// Subscribe registers fn for every mutation made through the store. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func(Change)) func() {
	if s == nil || fn == nil {
		return func() {}
	}
	if s.subscribers == nil {
		s.subscribers = make(map[int]func(Change))
	}
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	return func() {
		delete(s.subscribers, id)
	}
}

// Errors returns the message of every field that failed validation.
func (s *Store) Errors() map[FieldName]string {
	out := make(map[FieldName]string)
	if s == nil {
		return out
	}
	for name, field := range s.fields {
		if field.Evaluated() && !field.IsValid() {
			out[name] = field.ErrorMsg
		}
	}
	return out
}

// Values returns a copy of the current values keyed by field name.
func (s *Store) Values() map[string]any {
	out := make(map[string]any)
	if s == nil {
		return out
	}
	for name, field := range s.fields {
		if field == nil {
			out[string(name)] = nil
			continue
		}
		out[string(name)] = field.Value
	}
	return out
}

func (s *Store) lookup(name FieldName) (*Field, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	field, ok := s.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if field == nil {
		field = &Field{}
		s.fields[name] = field
	}
	return field, nil
}

func (s *Store) notify(change Change) {
	if len(s.subscribers) == 0 {
		return
	}
	ids := make([]int, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := s.subscribers[id]; ok {
			fn(change)
		}
	}
}
