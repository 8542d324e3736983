package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
)

const (
	componentsMessage = "Enter components you would like to generate swizzles for."
	componentsHelp    = "Each character is one component, for example RGBA or XYZW."
	maxMessage        = "Enter the maximum number of components."
	maxHelp           = "Sequences of length 1 up to this number are generated. This may take a while for large values."
	templateMessage   = "Enter a template."
	templateHelp      = "Available variables:\n" +
		"\t\"{elem}\" - Element name\n" +
		"\t\"{length}\" - The length of the element\n" +
		"\t\"{params}\" - The elements in parameter form\n" +
		"Type \\n for a line break."
	outputMessage = "Enter an output file name (leave blank for TTY output)."
	outputHelp    = "WARNING: an existing file is overwritten."
)

// Answers carries the values needed for one generation run. Nil pointers and
// an empty Components mark values still to be asked for. An empty template is
// a valid answer.
type Answers struct {
	Components    string
	MaxComponents *int
	Template      *string
	Output        *string
}

// Complete reports whether every value is present.
func (a Answers) Complete() bool {
	return len(a.Missing()) == 0
}

// Missing names the values that still need an answer, in prompt order.
func (a Answers) Missing() []string {
	var out []string
	if a.Components == "" {
		out = append(out, "components")
	}
	if a.MaxComponents == nil {
		out = append(out, "max components")
	}
	if a.Template == nil {
		out = append(out, "template")
	}
	if a.Output == nil {
		out = append(out, "output")
	}
	return out
}

// Merge returns a copy of a with every value set in over applied on top.
func (a Answers) Merge(over Answers) Answers {
	if over.Components != "" {
		a.Components = over.Components
	}
	if over.MaxComponents != nil {
		v := *over.MaxComponents
		a.MaxComponents = &v
	}
	if over.Template != nil {
		v := *over.Template
		a.Template = &v
	}
	if over.Output != nil {
		v := *over.Output
		a.Output = &v
	}
	return a
}

// Option configures a Session.
type Option func(*Session)

// WithDriver overrides the prompt driver used by the session.
func WithDriver(driver Driver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// Session asks for the generation inputs one at a time, skipping anything
// already answered.
type Session struct {
	driver Driver
}

// NewSession constructs a Session with the survey driver unless overridden.
func NewSession(options ...Option) *Session {
	s := &Session{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver()
	}
	return s
}

// Collect fills in whatever seed is missing: components, maximum length,
// template, then output path.
func (s *Session) Collect(ctx context.Context, seed Answers) (Answers, error) {
	if ctx == nil {
		return Answers{}, errors.New("prompt: context is required")
	}
	answers := seed

	if answers.Components == "" {
		components, err := s.driver.Input(ctx, InputConfig{
			Message:   componentsMessage,
			Help:      componentsHelp,
			Validator: required("enter at least one component"),
		})
		if err != nil {
			return Answers{}, err
		}
		answers.Components = components
	}

	if answers.MaxComponents == nil {
		maxComponents, err := s.askInt(ctx, maxMessage, maxHelp)
		if err != nil {
			return Answers{}, err
		}
		answers.MaxComponents = &maxComponents
	}

	if answers.Template == nil {
		template, err := s.driver.Input(ctx, InputConfig{
			Message: templateMessage,
			Help:    templateHelp,
		})
		if err != nil {
			return Answers{}, err
		}
		answers.Template = &template
	}

	if answers.Output == nil {
		output, err := s.driver.Input(ctx, InputConfig{
			Message: outputMessage,
			Help:    outputHelp,
		})
		if err != nil {
			return Answers{}, err
		}
		output = strings.TrimSpace(output)
		answers.Output = &output
	}

	return answers, nil
}

// askInt re-asks until the answer parses as an integer, reporting each
// rejected value through Info.
func (s *Session) askInt(ctx context.Context, message, help string) (int, error) {
	for {
		input, err := s.driver.Input(ctx, InputConfig{
			Message: message,
			Help:    help,
		})
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			if infoErr := s.driver.Info(ctx, fmt.Sprintf("Invalid number %q: enter a whole number", input)); infoErr != nil {
				return 0, infoErr
			}
			continue
		}
		return value, nil
	}
}

// ConfirmOverwrite asks before writing to path. Only an explicit yes
// confirms.
func (s *Session) ConfirmOverwrite(ctx context.Context, path string) (bool, error) {
	if ctx == nil {
		return false, errors.New("prompt: context is required")
	}
	return s.driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Writing to output file %q?", path),
		Help:    "The file is created or overwritten.",
		Default: false,
	})
}

func required(msg string) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New(msg)
		}
		return nil
	}
}
