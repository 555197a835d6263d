package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formstate/pkg/formstate"
	"github.com/goliatone/go-formstate/pkg/sanitize"
	"github.com/goliatone/go-formstate/pkg/validators"
)

// Runner binds terminal input to a form store: it prompts for each field,
// writes the answer, runs the field's validators and writes the verdict
// back.
type Runner struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	chains       map[formstate.FieldName]validators.Chain
	defaultChain validators.Chain
	labels       map[formstate.FieldName]string
	maxAttempts  int
	sanitizer    sanitize.Func
}

// New constructs a runner with defaults (survey driver, JSON output, the
// name chain for every field, markup stripped from input).
func New(options ...Option) *Runner {
	r := &Runner{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		chains:       make(map[formstate.FieldName]validators.Chain),
		defaultChain: validators.Name,
		labels:       make(map[formstate.FieldName]string),
		sanitizer:    sanitize.Text,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	return r
}

// ContentType reports the serialization format used by Render.
func (r *Runner) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	case OutputFormatYAML:
		return "application/yaml"
	default:
		return "application/json"
	}
}

// Chain returns the validators applied to name.
func (r *Runner) Chain(name formstate.FieldName) validators.Chain {
	if chain, ok := r.chains[name]; ok {
		return chain
	}
	return r.defaultChain
}

// Collect prompts for every field of store in name order. A field that
// keeps failing after the configured attempts is left invalid and the
// runner moves on.
func (r *Runner) Collect(ctx context.Context, store *formstate.Store) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if store == nil {
		return ErrNilStore
	}
	if r.driver == nil {
		return errors.New("tui: prompt driver is nil")
	}

	for _, name := range store.Names() {
		if err := r.promptField(ctx, store, name); err != nil {
			return err
		}
	}
	return nil
}

// Render collects every field and serializes the resulting store.
func (r *Runner) Render(ctx context.Context, store *formstate.Store) ([]byte, error) {
	if err := r.Collect(ctx, store); err != nil {
		return nil, err
	}
	return r.Serialize(store)
}

func (r *Runner) promptField(ctx context.Context, store *formstate.Store, name formstate.FieldName) error {
	label := r.label(name)
	chain := r.Chain(name)

	for attempt := 1; ; attempt++ {
		var (
			value   any
			current any
		)
		if field, ok := store.Field(name); ok && field != nil {
			current = field.Value
		}

		if flag, ok := current.(bool); ok {
			resp, err := r.driver.Confirm(ctx, ConfirmConfig{Message: label, Default: flag})
			if err != nil {
				return err
			}
			value = resp
		} else {
			resp, err := r.driver.Input(ctx, InputConfig{Message: label, Default: defaultString(current)})
			if err != nil {
				return err
			}
			value = r.sanitizer(resp)
		}

		if err := store.SetValue(name, value); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		res, err := store.Validate(name, chain)
		if err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		if res.Valid {
			return nil
		}

		_ = r.driver.Info(ctx, r.theme.ErrorPrefix+fmt.Sprintf("Invalid %s: %s", label, res.ErrorMsg))
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return nil
		}
	}
}

func (r *Runner) label(name formstate.FieldName) string {
	if label := r.labels[name]; label != "" {
		return label
	}
	return string(name)
}

func defaultString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
