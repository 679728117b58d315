// Copyright 2021 Jonathan Amsterdam.

package cmdline

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Default prefixes for long and short options.
const (
	DefaultPrefix      = "--"
	DefaultShortPrefix = "-"
)

// Present is the value recorded for a supplied option that takes no value.
const Present = "true"

// An Option describes a command-line option.
type Option struct {
	Name        string // long name, used after the prefix
	Short       string // optional alias, used after the short prefix
	Description string
	TakesValue  bool // if true, the option consumes the following argument
}

// Config configures a Parser. Zero fields get defaults.
type Config struct {
	// ProgramName is displayed in usage messages.
	// It defaults to the base name of os.Args[0].
	ProgramName string
	// Prefix marks a long option. Default "--".
	Prefix string
	// ShortPrefix marks a short option. Default "-".
	ShortPrefix string
	// Output receives usage text. Default os.Stdout.
	Output io.Writer
	// ErrorOutput receives parse diagnostics. Default os.Stderr.
	ErrorOutput io.Writer
	// Color highlights the "Error:" prefix of diagnostics.
	Color bool
	// Suggest appends a close registered option to unknown-option diagnostics.
	Suggest bool
}

// A Parser holds a set of registered options and parses argument lists
// against them. A Parser is meant to be set up once, at program startup,
// and then used from a single goroutine.
type Parser struct {
	cfg     Config
	options map[string]*Option
	shorts  map[string]string // short alias to name
	order   []string          // names in registration order
}

// New returns a Parser with no registered options.
func New(cfg Config) *Parser {
	if cfg.ProgramName == "" && len(os.Args) > 0 {
		cfg.ProgramName = filepath.Base(os.Args[0])
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if cfg.ShortPrefix == "" {
		cfg.ShortPrefix = DefaultShortPrefix
	}
	return &Parser{
		cfg:     cfg,
		options: map[string]*Option{},
		shorts:  map[string]string{},
	}
}

func (p *Parser) ProgramName() string { return p.cfg.ProgramName }

func (p *Parser) SetProgramName(name string) { p.cfg.ProgramName = name }

// SetOutput sets the destination for usage text.
// If w is nil, os.Stdout is used.
func (p *Parser) SetOutput(w io.Writer) { p.cfg.Output = w }

// SetErrorOutput sets the destination for parse diagnostics.
// If w is nil, os.Stderr is used.
func (p *Parser) SetErrorOutput(w io.Writer) { p.cfg.ErrorOutput = w }

// Output returns the destination for usage text.
func (p *Parser) Output() io.Writer {
	if p.cfg.Output == nil {
		return os.Stdout
	}
	return p.cfg.Output
}

// ErrorOutput returns the destination for parse diagnostics.
func (p *Parser) ErrorOutput() io.Writer {
	if p.cfg.ErrorOutput == nil {
		return os.Stderr
	}
	return p.cfg.ErrorOutput
}

func (p *Parser) Prefix() string { return p.cfg.Prefix }
func (p *Parser) ShortPrefix() string { return p.cfg.ShortPrefix }

// isOption reports whether arg carries either option prefix.
func (p *Parser) isOption(arg string) bool {
	return strings.HasPrefix(arg, p.cfg.Prefix) || strings.HasPrefix(arg, p.cfg.ShortPrefix)
}
