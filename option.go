package cli

// Option describes a single flag a command accepts. An option is identified
// by a short name, a long name, or both; at least one must be set.
type Option struct {
	// Short is the single-dash name, e.g. "v" for -v. May be empty if Long
	// is set.
	Short string

	// Long is the double-dash name, e.g. "verbose" for --verbose. May be
	// empty if Short is set.
	Long string

	// Required indicates the option must appear for an evaluation to
	// validate.
	Required bool

	// TakesValue indicates the option carries an attached value, written as
	// -n=value or --name=value. Options without TakesValue reject attached
	// values.
	TakesValue bool

	// Help is a one-line description shown in the OPTIONS section of the
	// help text.
	Help string
}

// HelpOption is appended to every command's option list during evaluation
// and help rendering. Matching it short-circuits evaluation and emits the
// command's help text.
var HelpOption = Option{
	Short: "h",
	Long:  "help",
	Help:  "Show help information",
}

// Flag returns the option's resolved name: the long name when present,
// otherwise the short name. Parsed tokens resolve to this name regardless of
// which spelling appeared on the command line.
func (o Option) Flag() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// matches reports whether name refers to this option by either spelling.
func (o Option) matches(name string) bool {
	return (o.Short != "" && o.Short == name) || (o.Long != "" && o.Long == name)
}

func (o Option) usageLine() string {
	var name string
	switch {
	case o.Short != "" && o.Long != "":
		name = "-" + o.Short + ", --" + o.Long
	case o.Long != "":
		name = "--" + o.Long
	default:
		name = "-" + o.Short
	}
	if o.TakesValue {
		name += "=<value>"
	}
	return name
}
