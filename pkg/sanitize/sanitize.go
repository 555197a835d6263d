// Package sanitize cleans raw text typed into form fields before it is
// stored or validated.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Text strips every markup element from raw and trims surrounding
// whitespace. Entities escaped by the policy are decoded so "Ann & Bob"
// survives unchanged.
func Text(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := textSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// Func adapts a sanitizer to plain string transforms.
type Func func(string) string

// Identity leaves input untouched.
func Identity(raw string) string {
	return raw
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
