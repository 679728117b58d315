// Copyright 2021 Jonathan Amsterdam.

package cmdline

import (
	"errors"
	"fmt"
)

// Code to register and look up options.

// AddOption registers an option with no short alias.
// It panics if the option cannot be registered; in particular, registering
// a name that is already registered panics rather than replacing the
// earlier option.
func (p *Parser) AddOption(name, description string, takesValue bool) {
	p.MustAdd(Option{Name: name, Description: description, TakesValue: takesValue})
}

// MustAdd is like Add, but panics on error.
func (p *Parser) MustAdd(o Option) {
	if err := p.Add(o); err != nil {
		panic(err)
	}
}

// Add registers o. The name and, if present, the short alias must not
// already be registered. On error nothing is registered.
func (p *Parser) Add(o Option) error {
	if err := p.checkNew(o); err != nil {
		return err
	}
	opt := o
	p.options[o.Name] = &opt
	if o.Short != "" {
		p.shorts[o.Short] = o.Name
	}
	p.order = append(p.order, o.Name)
	return nil
}

func (p *Parser) checkNew(o Option) error {
	if o.Name == "" {
		return &RegistrationError{Kind: InvalidOption, Option: o, Err: errors.New("empty name")}
	}
	if _, ok := p.options[o.Name]; ok {
		return &RegistrationError{Kind: DuplicateOption, Option: o,
			Err: fmt.Errorf("option %q already registered", o.Name)}
	}
	if owner, ok := p.shorts[o.Short]; ok && o.Short != "" {
		return &RegistrationError{Kind: DuplicateOption, Option: o,
			Err: fmt.Errorf("short name %q already used by %q", o.Short, owner)}
	}
	return nil
}

// Lookup returns the option registered under name, and whether there is one.
func (p *Parser) Lookup(name string) (Option, bool) {
	o, ok := p.options[name]
	if !ok {
		return Option{}, false
	}
	return *o, true
}

// Option returns the option registered under name,
// or the zero Option if there is none.
func (p *Parser) Option(name string) Option {
	o, _ := p.Lookup(name)
	return o
}

// ShortName returns the short alias of the named option,
// or "" if it has none or is not registered.
func (p *Parser) ShortName(name string) string {
	return p.Option(name).Short
}

// Description returns the description of the named option,
// or "" if it is not registered.
func (p *Parser) Description(name string) string {
	return p.Option(name).Description
}

// Options returns the registered options in registration order.
func (p *Parser) Options() []Option {
	opts := make([]Option, 0, len(p.order))
	for _, n := range p.order {
		opts = append(opts, *p.options[n])
	}
	return opts
}

// resolveShort returns the option with the given short alias.
func (p *Parser) resolveShort(short string) *Option {
	name, ok := p.shorts[short]
	if !ok {
		return nil
	}
	return p.options[name]
}
