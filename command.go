package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/clitree/cli/pkg/suggest"
)

// Callback is the action attached to a command. It is invoked by
// [PerformCallbacks] with the evaluation of the command it belongs to, never
// by evaluation itself.
type Callback func(ctx context.Context, e *CommandEvaluation) error

// Command is a node in the command tree. A command owns its options and
// either positional parameters or nested subcommands, never both.
type Command struct {
	// Name identifies the command. Subcommand names must be unique among
	// siblings; a token equal to a subcommand's name selects it.
	Name string

	// Overview is a brief description of the command's purpose, shown in
	// the OVERVIEW section of its help text and next to its name in the
	// parent's SUBCOMMANDS section.
	Overview string

	// Usage is the command's full usage pattern, e.g. "task add <text> [flags]".
	// It has no effect on parsing.
	Usage string

	// Options holds the command's flag definitions. The synthesized
	// [HelpOption] is always part of the effective list and need not be
	// declared.
	Options []Option

	// Parameters describes the positional arguments the command accepts.
	// Mutually exclusive with SubCommands.
	Parameters []Parameter

	// SubCommands holds the nested commands selectable under this one.
	// Mutually exclusive with Parameters.
	SubCommands []*Command

	// Callback is the optional action to run after a successful evaluation
	// of this command. See [PerformCallbacks].
	Callback Callback

	output io.Writer
}

// SubCommand returns the direct subcommand with the given name, or nil if no
// such child exists.
func (c *Command) SubCommand(name string) *Command {
	for _, sub := range c.SubCommands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

// SetSubCommand inserts sub as a child of c, replacing any existing child
// with the same name.
func (c *Command) SetSubCommand(sub *Command) {
	for i, existing := range c.SubCommands {
		if existing.Name == sub.Name {
			c.SubCommands[i] = sub
			return
		}
	}
	c.SubCommands = append(c.SubCommands, sub)
}

// effectiveOptions returns the command's declared options with the
// synthesized help option appended.
func (c *Command) effectiveOptions() []Option {
	return append(append(make([]Option, 0, len(c.Options)+1), c.Options...), HelpOption)
}

// findOption resolves a parsed option name against the effective option
// list, matching either spelling.
func (c *Command) findOption(name string) (Option, bool) {
	for _, opt := range c.effectiveOptions() {
		if opt.matches(name) {
			return opt, true
		}
	}
	return Option{}, false
}

// Validate checks that the command's declared shape is consistent. It is
// scoped to a single level; each level of the tree validates itself when
// evaluation reaches it. All violations found are collected into a single
// [ValidateError].
//
// Validate is pure: calling it any number of times on an unchanged command
// yields the same result.
func (c *Command) Validate() error {
	var errs *multierror.Error

	if len(c.Parameters) > 0 && len(c.SubCommands) > 0 {
		errs = multierror.Append(errs, fmt.Errorf(
			"command %q declares both parameters and subcommands", c.Name))
	}

	names := make(map[string]bool, len(c.SubCommands))
	for _, sub := range c.SubCommands {
		if names[sub.Name] {
			errs = multierror.Append(errs, fmt.Errorf(
				"command %q: duplicate subcommand name %q", c.Name, sub.Name))
		}
		names[sub.Name] = true
	}

	shorts := make(map[string]bool)
	longs := make(map[string]bool)
	for _, opt := range c.effectiveOptions() {
		if opt.Short == "" && opt.Long == "" {
			errs = multierror.Append(errs, fmt.Errorf(
				"command %q: option with neither short nor long name", c.Name))
			continue
		}
		if opt.Short != "" {
			if shorts[opt.Short] {
				errs = multierror.Append(errs, fmt.Errorf(
					"command %q: duplicate option short name %q", c.Name, "-"+opt.Short))
			}
			shorts[opt.Short] = true
		}
		if opt.Long != "" {
			if longs[opt.Long] {
				errs = multierror.Append(errs, fmt.Errorf(
					"command %q: duplicate option long name %q", c.Name, "--"+opt.Long))
			}
			longs[opt.Long] = true
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return newValidateError(err)
	}
	return nil
}

// SetOutput sets the destination for the command's help text. The default is
// standard output.
func (c *Command) SetOutput(w io.Writer) {
	c.output = w
}

func (c *Command) unknownCommandError(token string) error {
	var known []string
	for _, sub := range c.SubCommands {
		known = append(known, sub.Name)
	}
	suggestions := suggest.FindSimilar(token, known, 3)
	if len(suggestions) > 0 {
		return fmt.Errorf("unknown command %q for %q. Did you mean one of these?\n\t%s",
			token, c.Name, strings.Join(suggestions, "\n\t"))
	}
	return fmt.Errorf("unknown command %q for %q", token, c.Name)
}

func (c *Command) unknownOptionError(name string) error {
	var known []string
	for _, opt := range c.effectiveOptions() {
		if opt.Short != "" {
			known = append(known, opt.Short)
		}
		if opt.Long != "" {
			known = append(known, opt.Long)
		}
	}
	suggestions := suggest.FindSimilar(name, known, 3)
	if len(suggestions) > 0 {
		return parseErrorf("command %q: unknown option %q. Did you mean one of these?\n\t--%s",
			c.Name, name, strings.Join(suggestions, "\n\t--"))
	}
	return parseErrorf("command %q: unknown option %q", c.Name, name)
}
