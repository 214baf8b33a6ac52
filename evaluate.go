package cli

// Evaluate parses a full process argument vector against the command tree
// rooted at c. The first element is discarded (conventionally the executable
// path) and the remainder is evaluated recursively, so callers typically
// pass os.Args directly.
//
// On success the returned evaluation chain mirrors the command path taken.
// Failures are reported as a [ParseError] or [ValidateError]; matching the
// help option is not a failure, it emits the current command's help text and
// returns the evaluation collected so far.
func (c *Command) Evaluate(arguments []string) (*CommandEvaluation, error) {
	if len(arguments) == 0 {
		return nil, parseErrorf("command %q: empty argument vector", c.Name)
	}
	return c.evaluate(arguments[1:])
}

// evaluate consumes the tokens remaining at this command level in a single
// left-to-right pass. Each token is classified, in priority order, as a
// subcommand match, an option token, or a positional parameter.
func (c *Command) evaluate(arguments []string) (*CommandEvaluation, error) {
	if len(arguments) == 0 {
		return nil, parseErrorf("command %q expects at least one argument", c.Name)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	eval := &CommandEvaluation{Describer: c}
	for i, token := range arguments {
		// A subcommand match hands every remaining token to the child;
		// nothing after the name belongs to this level.
		if sub := c.SubCommand(token); sub != nil {
			subEval, err := sub.evaluate(arguments[i+1:])
			if err != nil {
				return nil, err
			}
			eval.SubEvaluation = subEval
			if err := eval.validate(); err != nil {
				return nil, err
			}
			return eval, nil
		}

		name, value, hasValue, isOption, err := splitOptionToken(token)
		if err != nil {
			return nil, err
		}
		if !isOption {
			eval.Parameters = append(eval.Parameters, token)
			continue
		}

		opt, ok := c.findOption(name)
		if !ok {
			return nil, c.unknownOptionError(name)
		}
		if opt.TakesValue && !hasValue {
			return nil, parseErrorf("command %q: option %q requires a value",
				c.Name, "--"+opt.Flag())
		}
		if !opt.TakesValue && hasValue {
			return nil, parseErrorf("command %q: option %q does not take a value",
				c.Name, "--"+opt.Flag())
		}
		// Identity, not name: a user option that happens to spell "help"
		// resolves to itself, only the synthesized option short-circuits.
		if opt == HelpOption {
			c.printHelp()
			eval.helpRequested = true
			return eval, nil
		}
		eval.Options = append(eval.Options, OptionEvaluation{
			Flag:     opt.Flag(),
			Value:    value,
			HasValue: hasValue,
		})
	}

	if err := eval.validate(); err != nil {
		return nil, err
	}
	return eval, nil
}
