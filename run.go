package cli

import (
	"context"
	"io"
)

// RunOptions specifies options for running a command tree.
type RunOptions struct {
	// Output is the destination for help text emitted during evaluation. If
	// nil, standard output is used.
	Output io.Writer
}

// Run evaluates the argument vector against the command tree rooted at root
// and, on success, invokes the callbacks of every matched command. A
// convenience function combining [Command.Evaluate] and [PerformCallbacks].
//
// When the help option is matched anywhere in the chain, the help text has
// already been emitted and no callbacks run.
//
// The options parameter may be nil, in which case default values are used.
func Run(ctx context.Context, root *Command, arguments []string, options *RunOptions) error {
	if options != nil && options.Output != nil {
		setOutput(root, options.Output)
	}
	eval, err := root.Evaluate(arguments)
	if err != nil {
		return err
	}
	if eval.HelpRequested() {
		return nil
	}
	return PerformCallbacks(ctx, eval)
}

// PerformCallbacks walks the evaluation chain outermost-first and invokes
// each matched command's callback with that command's own evaluation.
// Commands without a callback are skipped. The walk stops at the first
// callback error, which is returned as-is.
func PerformCallbacks(ctx context.Context, eval *CommandEvaluation) error {
	for e := eval; e != nil; e = e.SubEvaluation {
		if e.Describer == nil || e.Describer.Callback == nil {
			continue
		}
		if err := e.Describer.Callback(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func setOutput(c *Command, w io.Writer) {
	if c.output == nil {
		c.output = w
	}
	for _, sub := range c.SubCommands {
		setOutput(sub, w)
	}
}
