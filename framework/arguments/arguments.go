// Package arguments provides read-only access to the process arguments the
// application was started with.
//
// Tokens beginning with "--" are options: "--name" is an option with no
// value, "--name=value" carries a value, and repeated "--name=value"
// occurrences accumulate. Everything else is a non-option argument.
// An Arguments value is immutable once parsed.
package arguments

import (
	"fmt"
	"slices"
	"strings"
)

// Arguments holds the parsed form of a process argument list.
type Arguments struct {
	source     []string
	options    map[string][]string
	nonOptions []string
}

// Parse splits args into options and non-option arguments.
//
//	args, err := arguments.Parse("--config=app.yaml", "--debug", "serve")
//
// Returns an error for malformed option tokens such as "--=value".
func Parse(args ...string) (*Arguments, error) {
	parsed := &Arguments{
		source:  slices.Clone(args),
		options: make(map[string][]string),
	}
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			parsed.nonOptions = append(parsed.nonOptions, arg)
			continue
		}
		name, value, hasValue := strings.Cut(arg[2:], "=")
		if name == "" {
			return nil, fmt.Errorf("arguments: invalid option syntax [%s]", arg)
		}
		if hasValue {
			parsed.options[name] = append(parsed.options[name], value)
		} else if _, seen := parsed.options[name]; !seen {
			// Present without a value: empty but non-nil.
			parsed.options[name] = []string{}
		}
	}
	return parsed, nil
}

// SourceArgs returns the raw, unprocessed argument list.
func (a *Arguments) SourceArgs() []string {
	return slices.Clone(a.source)
}

// OptionNames returns the names of all options, sorted.
// For "--foo=bar --debug" it returns ["debug", "foo"].
func (a *Arguments) OptionNames() []string {
	names := make([]string, 0, len(a.options))
	for name := range a.options {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ContainsOption reports whether an option with the given name was supplied.
func (a *Arguments) ContainsOption(name string) bool {
	_, ok := a.options[name]
	return ok
}

// OptionValues returns the values supplied for the named option:
//
//   - nil if the option was never supplied
//   - an empty slice for a bare "--name"
//   - one element per "--name=value" occurrence, in order
func (a *Arguments) OptionValues(name string) []string {
	values, ok := a.options[name]
	if !ok {
		return nil
	}
	return slices.Clone(values)
}

// NonOptionArgs returns the arguments that were not options, in order.
func (a *Arguments) NonOptionArgs() []string {
	return slices.Clone(a.nonOptions)
}
