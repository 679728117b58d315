// Copyright 2021 Jonathan Amsterdam.

package cmdline

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Shell completion with github.com/posener/complete/v2.

// Complete runs shell completion for the registered options if the program
// was invoked by the shell to complete a command line; in that case it
// prints the completions and exits. Otherwise it returns. Running the
// program with COMP_INSTALL=1 installs completion for it.
//
// The completion package writes long options with "--" and one-letter
// options with "-", so completion matches the command line only with the
// default prefixes. For the same reason, short aliases longer than one
// letter, and aliases spelled like a long name, are not completed, and a
// one-letter long name is offered with a single dash.
//
// Call Complete after registering options and before Parse.
func (p *Parser) Complete() {
	p.completionCommand().Complete(p.ProgramName())
}

func (p *Parser) completionCommand() *complete.Command {
	cmd := &complete.Command{Flags: map[string]complete.Predictor{}}
	opts := p.Options()
	for _, o := range opts {
		cmd.Flags[o.Name] = predictor(o)
	}
	for _, o := range opts {
		if len(o.Short) != 1 {
			continue
		}
		if _, ok := p.options[o.Short]; ok {
			continue
		}
		cmd.Flags[o.Short] = predictor(o)
	}
	return cmd
}

func predictor(o Option) complete.Predictor {
	if o.TakesValue {
		return predict.Something
	}
	return predict.Nothing
}
