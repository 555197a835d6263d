package tui

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formstate/pkg/formstate"
)

// Serialize encodes store in the runner's output format.
func (r *Runner) Serialize(store *formstate.Store) ([]byte, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(store)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(store)), nil
	case OutputFormatYAML:
		out, err := yaml.Marshal(store.Snapshot())
		if err != nil {
			return nil, fmt.Errorf("tui: encode yaml: %w", err)
		}
		return out, nil
	default:
		out, err := json.Marshal(store.Snapshot())
		if err != nil {
			return nil, fmt.Errorf("tui: encode json: %w", err)
		}
		return out, nil
	}
}

func flattenForm(store *formstate.Store) string {
	flattened := url.Values{}
	for key, value := range store.Values() {
		flatten(key, value, flattened)
	}
	flattened.Set("allValid", strconv.FormatBool(store.IsAllValid()))
	return flattened.Encode()
}

func flatten(prefix string, value any, out url.Values) {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			flatten(prefix+"."+key, val, out)
		}
	case []any:
		for _, val := range v {
			out.Add(prefix+"[]", fmt.Sprint(val))
		}
	case nil:
		out.Set(prefix, "")
	default:
		out.Set(prefix, fmt.Sprint(v))
	}
}

func prettyPrint(store *formstate.Store) string {
	var b strings.Builder
	for _, name := range store.Names() {
		field, _ := store.Field(name)
		var value any
		if field != nil {
			value = field.Value
		}
		status := "unchecked"
		switch {
		case field.IsValid():
			status = "ok"
		case field.Evaluated():
			status = field.ErrorMsg
		}
		fmt.Fprintf(&b, "%s=%v (%s)\n", name, defaultString(value), status)
	}
	fmt.Fprintf(&b, "allValid=%t\n", store.IsAllValid())
	return b.String()
}
