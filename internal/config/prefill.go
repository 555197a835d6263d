package config

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formstate/pkg/formstate"
	"github.com/goliatone/go-formstate/pkg/sanitize"
)

// LoadPrefill reads a YAML (or JSON) document mapping field names to
// initial values.
func LoadPrefill(fsys fs.FS, path string) (map[string]any, error) {
	if fsys == nil || strings.TrimSpace(path) == "" {
		return map[string]any{}, nil
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("config: read prefill %s: %w", path, err)
	}
	return ParsePrefill(data, path)
}

// ParsePrefill decodes raw prefill bytes; path is used for messages only.
func ParsePrefill(data []byte, path string) (map[string]any, error) {
	out := map[string]any{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return out, nil
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("config: parse prefill %s: %w", path, err)
	}
	return out, nil
}

// ApplyPrefill writes each value into store, passing string values through
// clean first (nil leaves them untouched). Keys are matched
// case-insensitively against the store's fields; unknown keys and two keys
// naming the same field fail.
func ApplyPrefill(store *formstate.Store, values map[string]any, clean sanitize.Func) error {
	names := store.Names()
	resolved := make(map[formstate.FieldName]any, len(values))
	sources := make(map[formstate.FieldName]string, len(values))
	for key, value := range values {
		name, ok := matchField(names, key)
		if !ok {
			return fmt.Errorf("config: prefill: %w: %q", formstate.ErrUnknownField, key)
		}
		if prev, seen := sources[name]; seen {
			first, second := prev, key
			if second < first {
				first, second = second, first
			}
			return fmt.Errorf("config: prefill: keys %q and %q both set field %q", first, second, name)
		}
		sources[name] = key
		if text, ok := value.(string); ok && clean != nil {
			value = clean(text)
		}
		resolved[name] = value
	}

	for _, name := range names {
		value, ok := resolved[name]
		if !ok {
			continue
		}
		if err := store.SetValue(name, value); err != nil {
			return fmt.Errorf("config: prefill: %w", err)
		}
	}
	return nil
}
