package formstate

// Snapshot is a detached copy of a store suitable for serialization.
type Snapshot struct {
	Fields   map[FieldName]Field `json:"fields" yaml:"fields"`
	AllValid bool                `json:"allValid" yaml:"allValid"`
}

// Snapshot copies every field and the aggregate at call time.
func (s *Store) Snapshot() Snapshot {
	out := Snapshot{Fields: make(map[FieldName]Field), AllValid: s.IsAllValid()}
	if s == nil {
		return out
	}
	for name, field := range s.fields {
		if field == nil {
			out.Fields[name] = Field{}
			continue
		}
		clone := *field
		if field.Valid != nil {
			valid := *field.Valid
			clone.Valid = &valid
		}
		out.Fields[name] = clone
	}
	return out
}
