// Copyright 2021 Jonathan Amsterdam.

package cmdline

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/fatih/color"
)

// Code for parsing argument lists.

// A Result holds the outcome of one call to Parse.
type Result struct {
	values map[string]string
	args   []string
	errs   []*ParseError
}

// Parse parses an argument vector whose first element is the program path,
// as with os.Args. The program path is ignored.
//
// Parse never fails. Each problem is written to the error output as soon as
// it is found and recorded in the Result.
func (p *Parser) Parse(argv []string) *Result {
	if len(argv) == 0 {
		return p.ParseArgs(nil)
	}
	return p.ParseArgs(argv[1:])
}

// ParseArgs parses args, which should not include the program path.
//
// An argument that starts with the prefix names an option by its long name.
// Otherwise, an argument that starts with the short prefix names an option
// by its short alias. An option that takes a value consumes the next
// argument, unless there is none or it starts with either prefix. All other
// arguments are positional.
func (p *Parser) ParseArgs(args []string) *Result {
	r := &Result{values: map[string]string{}}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		var opt *Option
		switch {
		case strings.HasPrefix(arg, p.cfg.Prefix):
			opt = p.options[strings.TrimPrefix(arg, p.cfg.Prefix)]
		case strings.HasPrefix(arg, p.cfg.ShortPrefix):
			opt = p.resolveShort(strings.TrimPrefix(arg, p.cfg.ShortPrefix))
		default:
			r.args = append(r.args, arg)
			continue
		}
		if opt == nil {
			p.report(r, &ParseError{Kind: UnknownOption, Arg: arg, Suggestion: p.suggest(arg)})
			continue
		}
		if !opt.TakesValue {
			r.values[opt.Name] = Present
			continue
		}
		if i+1 < len(args) && !p.isOption(args[i+1]) {
			i++
			r.values[opt.Name] = args[i]
		} else {
			p.report(r, &ParseError{Kind: MissingValue, Arg: arg})
		}
	}
	return r
}

// report records err in r and writes it to the error output.
func (p *Parser) report(r *Result, err *ParseError) {
	r.errs = append(r.errs, err)
	prefix := "Error:"
	if p.cfg.Color {
		c := color.New(color.FgRed, color.Bold)
		c.EnableColor()
		prefix = c.Sprint(prefix)
	}
	w := p.ErrorOutput()
	fmt.Fprintf(w, "%s %v", prefix, err)
	if err.Suggestion != "" {
		fmt.Fprintf(w, " (did you mean '%s'?)", err.Suggestion)
	}
	fmt.Fprintln(w)
}

// maxSuggestDistance is the largest edit distance for which an unknown
// option gets a suggestion.
const maxSuggestDistance = 2

// suggest returns the registered option, with its prefix, that is closest
// to arg, or "" if none is close enough or suggestions are off.
func (p *Parser) suggest(arg string) string {
	if !p.cfg.Suggest {
		return ""
	}
	best := ""
	bestDist := maxSuggestDistance + 1
	try := func(s string) {
		if d := levenshtein.Distance(arg, s, nil); d < bestDist {
			best, bestDist = s, d
		}
	}
	for _, name := range p.order {
		o := p.options[name]
		try(p.cfg.Prefix + o.Name)
		if o.Short != "" {
			try(p.cfg.ShortPrefix + o.Short)
		}
	}
	return best
}

// Value returns the value of the named option: the argument that followed
// it, Present if it takes no value, or "" if it was not supplied or is not
// registered.
func (r *Result) Value(name string) string {
	return r.values[name]
}

// Lookup returns the value of the named option and whether it was supplied.
func (r *Result) Lookup(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Has reports whether the named option was supplied.
func (r *Result) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Args returns the positional arguments, in order.
func (r *Result) Args() []string {
	return r.args
}

// ErrorCount returns the number of problems found while parsing.
func (r *Result) ErrorCount() int {
	return len(r.errs)
}

// Errors returns the problems found while parsing, in order.
func (r *Result) Errors() []*ParseError {
	return r.errs
}

// Err returns nil if there were no problems, and otherwise an error
// listing all of them, one per line.
func (r *Result) Err() error {
	return combine(r.errs)
}
