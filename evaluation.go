package cli

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// OptionEvaluation is the parsed form of one option-shaped token: the
// resolved flag name and, when present, the attached "=value".
type OptionEvaluation struct {
	// Flag is the resolved name of the matched option, per [Option.Flag].
	Flag string

	// Value holds the attached value, if HasValue is true.
	Value string

	// HasValue reports whether the token carried an attached value.
	HasValue bool
}

// splitOptionToken lexically splits a raw token into an option name and an
// optional attached value. A false isOption means the token is not
// option-shaped and should be treated as a positional; a non-nil error means
// the token is option-shaped but malformed.
func splitOptionToken(token string) (name, value string, hasValue, isOption bool, err error) {
	if !strings.HasPrefix(token, "-") || token == "-" {
		return "", "", false, false, nil
	}
	name = strings.TrimPrefix(strings.TrimPrefix(token, "-"), "-")
	if before, after, found := strings.Cut(name, "="); found {
		name, value, hasValue = before, after, true
	}
	if name == "" {
		return "", "", false, true, parseErrorf("malformed option token %q", token)
	}
	return name, value, hasValue, true, nil
}

// CommandEvaluation is the parsed result for one command level. It is
// created empty when evaluation of a level begins, populated token by token,
// validated once, and then returned immutable to the caller.
type CommandEvaluation struct {
	// Describer is the command this evaluation was parsed against. It is a
	// read-only back-reference used for validation, never for ownership.
	Describer *Command

	// Options holds the options actually seen, in argument order.
	Options []OptionEvaluation

	// Parameters holds the raw positional tokens seen, in argument order.
	Parameters []string

	// SubEvaluation is set iff a subcommand token was matched. Chained
	// evaluations mirror the command path taken.
	SubEvaluation *CommandEvaluation

	helpRequested bool
}

// Option returns the evaluation for the option with the given resolved flag
// name, and whether it was seen at this level.
func (e *CommandEvaluation) Option(flag string) (OptionEvaluation, bool) {
	for _, opt := range e.Options {
		if opt.Flag == flag {
			return opt, true
		}
	}
	return OptionEvaluation{}, false
}

// Terminal returns the last evaluation in the chain, i.e. the evaluation of
// the innermost command that was matched.
func (e *CommandEvaluation) Terminal() *CommandEvaluation {
	for e.SubEvaluation != nil {
		e = e.SubEvaluation
	}
	return e
}

// HelpRequested reports whether the help option was matched at this level or
// any level below it. Callback dispatch is skipped for such evaluations.
func (e *CommandEvaluation) HelpRequested() bool {
	for ; e != nil; e = e.SubEvaluation {
		if e.helpRequested {
			return true
		}
	}
	return false
}

// validate checks the completed evaluation against its describer: positional
// arity, required options, and that no option was seen more than once.
func (e *CommandEvaluation) validate() error {
	c := e.Describer
	var errs *multierror.Error

	minArity := minParameters(c.Parameters)
	maxArity := len(c.Parameters)
	if len(e.Parameters) < minArity {
		errs = multierror.Append(errs, fmt.Errorf(
			"command %q expects at least %d parameter(s), got %d",
			c.Name, minArity, len(e.Parameters)))
	}
	if len(e.Parameters) > maxArity {
		if maxArity == 0 && len(c.SubCommands) > 0 {
			errs = multierror.Append(errs, c.unknownCommandError(e.Parameters[0]))
		} else {
			errs = multierror.Append(errs, fmt.Errorf(
				"command %q expects at most %d parameter(s), got %d",
				c.Name, maxArity, len(e.Parameters)))
		}
	}

	for _, opt := range c.Options {
		if !opt.Required {
			continue
		}
		if _, ok := e.Option(opt.Flag()); !ok {
			errs = multierror.Append(errs, fmt.Errorf(
				"command %q: required option %q not set", c.Name, "--"+opt.Flag()))
		}
	}

	seen := make(map[string]bool, len(e.Options))
	for _, opt := range e.Options {
		if seen[opt.Flag] {
			errs = multierror.Append(errs, fmt.Errorf(
				"command %q: option %q given more than once", c.Name, "--"+opt.Flag))
		}
		seen[opt.Flag] = true
	}

	if err := errs.ErrorOrNil(); err != nil {
		return newValidateError(err)
	}
	return nil
}
