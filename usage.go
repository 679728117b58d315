// Copyright 2021 Jonathan Amsterdam.

package cmdline

import (
	"fmt"
	"io"
)

// minLongWidth is the narrowest the long-name column of the usage is printed.
const minLongWidth = 24

const argPlaceholder = " <arg>"

// PrintUsage writes the usage to the parser's output.
func (p *Parser) PrintUsage() {
	p.WriteUsage(p.Output())
}

// WriteUsage writes a usage message listing every option in registration
// order, for example:
//
//	Usage: prog [options]
//
//	Options:
//	  -h, --help                  display this information
//	      --name <arg>            display your name
func (p *Parser) WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "\nUsage: %s [options]\n", p.ProgramName())
	opts := p.Options()
	if len(opts) == 0 {
		return
	}
	fmt.Fprintln(w, "\nOptions:")
	shortWidth, longWidth := p.columnWidths(opts)
	for _, o := range opts {
		short := ""
		if o.Short != "" {
			short = p.cfg.ShortPrefix + o.Short + ","
		}
		fmt.Fprintf(w, "  %-*s %-*s%s\n", shortWidth+1, short, longWidth, p.longColumn(o), o.Description)
	}
}

func (p *Parser) longColumn(o Option) string {
	s := p.cfg.Prefix + o.Name
	if o.TakesValue {
		s += argPlaceholder
	}
	return s
}

// columnWidths returns the widths of the short and long columns.
func (p *Parser) columnWidths(opts []Option) (short, long int) {
	long = minLongWidth
	for _, o := range opts {
		if o.Short != "" {
			if n := len(p.cfg.ShortPrefix) + len(o.Short); n > short {
				short = n
			}
		}
		if n := len(p.longColumn(o)) + 2; n > long {
			long = n
		}
	}
	return short, long
}
