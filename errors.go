// Copyright 2021 Jonathan Amsterdam.

package cmdline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// An ErrorKind classifies registration and parse errors.
type ErrorKind int

const (
	// UnknownOption: an argument has an option prefix but names no registered option.
	UnknownOption ErrorKind = iota + 1
	// MissingValue: an option that takes a value is not followed by one.
	MissingValue
	// DuplicateOption: a name or short alias is registered twice.
	DuplicateOption
	// InvalidOption: an option cannot be registered, for example because its name is empty.
	InvalidOption
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownOption:
		return "unknown option"
	case MissingValue:
		return "missing value"
	case DuplicateOption:
		return "duplicate option"
	case InvalidOption:
		return "invalid option"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// A ParseError describes one problem found while parsing arguments.
type ParseError struct {
	Kind ErrorKind
	Arg  string // the argument as it appeared on the command line
	// Suggestion is a registered option, with prefix, close to Arg.
	// It is set only for UnknownOption errors when Config.Suggest is true.
	Suggestion string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownOption:
		return fmt.Sprintf("unknown option '%s'", e.Arg)
	case MissingValue:
		return fmt.Sprintf("value missing for option '%s'", e.Arg)
	default:
		return fmt.Sprintf("%s '%s'", e.Kind, e.Arg)
	}
}

// Is lets errors.Is match a ParseError against a kind, as in
//
//	errors.Is(err, &ParseError{Kind: MissingValue})
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind && (t.Arg == "" || t.Arg == e.Arg)
}

// A RegistrationError is returned when an option cannot be registered.
type RegistrationError struct {
	Kind   ErrorKind
	Option Option
	Err    error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// UsageError is an error in how the program is invoked.
// Its message includes the program's usage.
type UsageError struct {
	p   *Parser
	Err error
}

// NewUsageError returns a UsageError for the program described by p.
func (p *Parser) NewUsageError(err error) *UsageError {
	return &UsageError{p: p, Err: err}
}

func (u *UsageError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v\n", u.p.ProgramName(), u.Err)
	u.p.WriteUsage(&b)
	s := b.String()
	return s[:len(s)-1] // trim final newline
}

func (u *UsageError) Unwrap() error {
	return u.Err
}

// combine joins parse errors into a single error, or returns nil.
func combine(errs []*ParseError) error {
	var merr *multierror.Error
	for _, e := range errs {
		merr = multierror.Append(merr, e)
	}
	if merr == nil {
		return nil
	}
	merr.ErrorFormat = listErrors
	return merr
}

func listErrors(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// ParseErrors returns the ParseErrors contained in err.
func ParseErrors(err error) []*ParseError {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		var perr *ParseError
		if errors.As(err, &perr) {
			return []*ParseError{perr}
		}
		return nil
	}
	var perrs []*ParseError
	for _, e := range merr.Errors {
		var perr *ParseError
		if errors.As(e, &perr) {
			perrs = append(perrs, perr)
		}
	}
	return perrs
}
