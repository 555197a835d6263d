package tui

import (
	"github.com/goliatone/go-formstate/pkg/formstate"
	"github.com/goliatone/go-formstate/pkg/sanitize"
	"github.com/goliatone/go-formstate/pkg/validators"
)

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits the form snapshot as application/json.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded values.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
	// OutputFormatYAML emits the form snapshot as YAML.
	OutputFormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates a format name.
func ParseOutputFormat(raw string) (OutputFormat, bool) {
	switch format := OutputFormat(raw); format {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText, OutputFormatYAML:
		return format, true
	default:
		return "", false
	}
}

// Theme captures the optional prefix the runner applies to validation
// messages sent through the driver.
type Theme struct {
	ErrorPrefix string
}

// Option configures the Runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver used by the runner.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Runner) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}

// WithChains sets the validator chain per field. Fields without an entry
// use the default chain.
func WithChains(chains map[formstate.FieldName]validators.Chain) Option {
	return func(r *Runner) {
		for name, chain := range chains {
			r.chains[name] = chain
		}
	}
}

// WithDefaultChain replaces the chain used for fields without an entry.
func WithDefaultChain(chain validators.Chain) Option {
	return func(r *Runner) {
		r.defaultChain = chain
	}
}

// WithLabels sets prompt labels per field.
func WithLabels(labels map[formstate.FieldName]string) Option {
	return func(r *Runner) {
		for name, label := range labels {
			r.labels[name] = label
		}
	}
}

// WithMaxAttempts bounds re-prompting of an invalid field. Zero means
// unlimited.
func WithMaxAttempts(n int) Option {
	return func(r *Runner) {
		if n >= 0 {
			r.maxAttempts = n
		}
	}
}

// WithSanitizer replaces the transform applied to raw text input.
func WithSanitizer(fn sanitize.Func) Option {
	return func(r *Runner) {
		if fn != nil {
			r.sanitizer = fn
		}
	}
}
