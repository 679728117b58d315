// Copyright 2021 Jonathan Amsterdam.

/*
Package cmdline parses command-line arguments into option values and
positional arguments.

A program creates a Parser, registers the options it understands, and then
parses its argument list:

	p := cmdline.New(cmdline.Config{})
	p.MustAdd(cmdline.Option{Name: "help", Short: "h", Description: "display this information"})
	p.AddOption("name", "display your name", true)

	r := p.Parse(os.Args)
	if r.ErrorCount() > 0 {
	  p.PrintUsage()
	  os.Exit(1)
	}
	fmt.Println(r.Value("name"))

# Options

Each option has a long name, an optional short alias, a description and
a flag saying whether it takes a value. On the command line the long name
follows the prefix ("--" by default) and the short alias follows the short
prefix ("-" by default). The prefix is checked first, so with the defaults
"--name" is always a long option.

An option that takes a value consumes the argument after it. If there is no
next argument, or the next argument starts with either prefix, the value is
missing. There is no "--name=value" form, and short options cannot be
combined as in "-abc".

Values are strings. An option that takes no value has the value "true"
(the constant Present) when it is supplied. An option that was not supplied
has the value "".

Registering a name or short alias twice is an error.

# Parsing

Parse makes a single pass over the arguments and never stops early.
Unknown options and missing values are written to the error output
(os.Stderr by default) as they are found, and are also available from the
Result through ErrorCount, Errors and Err. Arguments without a prefix are
collected in order and returned by Result.Args. Each call to Parse returns
a new Result; nothing is carried over from earlier calls.

The library never exits the process. A typical program prints the usage
and exits with status 1 when there are errors or unexpected positional
arguments; see examples/person.

# Usage

PrintUsage writes a table of the registered options, in registration
order, to the output (os.Stdout by default).

# Completion

Shell completion for common shells is supported with the
github.com/posener/complete/v2 package. Call Parser.Complete after
registering options. To install completion for a program, run it with the
COMP_INSTALL environment variable set to 1.
*/
package cmdline
