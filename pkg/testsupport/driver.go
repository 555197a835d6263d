package testsupport

import (
	"context"
	"errors"

	"github.com/goliatone/go-formstate/pkg/tui"
)

// StubDriver is a scripted tui.PromptDriver. Each prompt consumes the next
// scripted answer and fails once the script runs out.
type StubDriver struct {
	Inputs   []string
	Confirms []bool

	// Prompts records the message of every Input/Confirm call.
	Prompts []string
	// Defaults records the default offered by every Input call.
	Defaults []string
	// InfoMessages records every Info call.
	InfoMessages []string

	inputPos   int
	confirmPos int
}

var _ tui.PromptDriver = (*StubDriver)(nil)

func (s *StubDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	s.Prompts = append(s.Prompts, cfg.Message)
	s.Defaults = append(s.Defaults, cfg.Default)
	if s.inputPos >= len(s.Inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.Inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *StubDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	s.Prompts = append(s.Prompts, cfg.Message)
	if s.confirmPos >= len(s.Confirms) {
		return false, errors.New("no confirm scripted")
	}
	val := s.Confirms[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *StubDriver) Info(_ context.Context, msg string) error {
	s.InfoMessages = append(s.InfoMessages, msg)
	return nil
}

// Consumed reports how many inputs and confirms were used.
func (s *StubDriver) Consumed() (inputs, confirms int) {
	return s.inputPos, s.confirmPos
}
