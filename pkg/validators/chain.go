package validators

import (
	"sort"
	"strings"
)

// Chain is an ordered sequence of validators applied to a single field.
type Chain []Validator

// Name is the chain applied to name-typed fields.
var Name = Chain{Required}

// Apply runs each validator in order. The first failure wins and its
// message is returned; an empty chain passes.
func (c Chain) Apply(value any) ValidationResult {
	for _, fn := range c {
		if fn == nil {
			continue
		}
		if res := fn(value); !res.Valid {
			if res.ErrorMsg == "" {
				res.ErrorMsg = InvalidMessage
			}
			return res
		}
	}
	return Pass()
}

// Validator adapts the chain to the single Validator signature.
func (c Chain) Validator() Validator {
	return c.Apply
}

var registry = map[string]Chain{
	"name":     Name,
	"required": {Required},
	"none":     {},
}

// Lookup resolves a chain by its registered name (case-insensitive).
func Lookup(name string) (Chain, bool) {
	chain, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return chain, ok
}

// Registered lists the chain names Lookup understands.
func Registered() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
