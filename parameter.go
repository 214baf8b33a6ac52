package cli

// Parameter describes a positional argument a command accepts. The order of
// a command's parameter list matters only for arity: a level must collect at
// least as many positionals as there are required parameters, and no more
// than the total parameter count.
type Parameter struct {
	// Name identifies the parameter in help and error text.
	Name string

	// Required counts toward the minimum arity of the command.
	Required bool
}

// minParameters returns the number of required parameters, the minimum
// positional arity for the list.
func minParameters(params []Parameter) int {
	var n int
	for _, p := range params {
		if p.Required {
			n++
		}
	}
	return n
}
