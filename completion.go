package cli

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Methods implementing github.com/posener/complete/v2's Completer interface,
// so a command tree doubles as its own shell completion source.

var _ complete.Completer = (*Command)(nil)

// Complete enables shell completion for the command tree. Call it early in
// main with the installed program name; when the shell requests completion
// the process prints the options and exits, otherwise this is a no-op.
func (c *Command) Complete(program string) {
	complete.Complete(program, c)
}

// SubCmdList returns the names of the direct subcommands.
func (c *Command) SubCmdList() []string {
	names := make([]string, 0, len(c.SubCommands))
	for _, sub := range c.SubCommands {
		names = append(names, sub.Name)
	}
	return names
}

// SubCmdGet returns the completer for the named subcommand, or nil if no
// such child exists.
func (c *Command) SubCmdGet(name string) complete.Completer {
	sub := c.SubCommand(name)
	if sub == nil {
		return nil
	}
	return sub
}

// FlagList returns every spelling of the command's effective options,
// without dash prefixes.
func (c *Command) FlagList() []string {
	var names []string
	for _, opt := range c.effectiveOptions() {
		if opt.Short != "" {
			names = append(names, opt.Short)
		}
		if opt.Long != "" {
			names = append(names, opt.Long)
		}
	}
	return names
}

// FlagGet returns the value predictor for the named flag: something for
// value-carrying options, nothing for booleans and unknown names.
func (c *Command) FlagGet(name string) complete.Predictor {
	opt, ok := c.findOption(name)
	if !ok || !opt.TakesValue {
		return predict.Nothing
	}
	return predict.Something
}

// ArgsGet returns the predictor for positional arguments: something when the
// command declares parameters, nothing for subcommand groups and leaves
// without parameters.
func (c *Command) ArgsGet() complete.Predictor {
	if len(c.Parameters) > 0 {
		return predict.Something
	}
	return predict.Nothing
}
