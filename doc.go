// Package cli provides a declarative parser for command-line applications
// built as a tree of commands. Each command describes the options it accepts
// and either positional parameters or nested subcommands, and evaluating a
// raw argument vector against the tree produces a structured
// [CommandEvaluation] (or a precise parse/validation error) that mirrors the
// command path taken.
//
// The package deliberately separates describing a command tree, evaluating
// arguments against it, and running the callbacks attached to the matched
// commands. This keeps evaluation a pure, deterministic function of its
// inputs, which makes command trees easy to test without touching process
// state.
package cli
