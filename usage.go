package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clitree/cli/pkg/textutil"
)

// nameColumnWidth is the fixed column subcommand and option names occupy in
// help output. Longer names are truncated rather than widening the column.
const nameColumnWidth = 24

// Help renders the command's help text: OVERVIEW, USAGE, SUBCOMMANDS and
// OPTIONS sections, for this command level only. The section headers are
// always present, even when a section has no entries.
func (c *Command) Help() string {
	var b strings.Builder

	b.WriteString("OVERVIEW: ")
	overview := textutil.Wrap(c.Overview, 70)
	if len(overview) == 0 {
		overview = []string{""}
	}
	b.WriteString(overview[0])
	b.WriteRune('\n')
	indent := strings.Repeat(" ", len("OVERVIEW: "))
	for _, line := range overview[1:] {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteRune('\n')
	}
	b.WriteRune('\n')

	fmt.Fprintf(&b, "USAGE: %s\n\n", c.usagePattern())

	b.WriteString("SUBCOMMANDS:\n")
	for _, sub := range c.SubCommands {
		fmt.Fprintf(&b, "   %s%s\n", textutil.Column(sub.Name, nameColumnWidth), sub.Overview)
	}
	b.WriteRune('\n')

	b.WriteString("OPTIONS:\n")
	for _, opt := range c.effectiveOptions() {
		fmt.Fprintf(&b, "   %s%s\n", textutil.Column(opt.usageLine(), nameColumnWidth), opt.Help)
	}

	return b.String()
}

// usagePattern returns the declared usage string, or synthesizes one from
// the command's shape.
func (c *Command) usagePattern() string {
	if c.Usage != "" {
		return c.Usage
	}
	pattern := c.Name + " [options]"
	if len(c.SubCommands) > 0 {
		return pattern + " <subcommand>"
	}
	for _, p := range c.Parameters {
		if p.Required {
			pattern += " <" + p.Name + ">"
		} else {
			pattern += " [" + p.Name + "]"
		}
	}
	return pattern
}

func (c *Command) printHelp() {
	var w io.Writer = os.Stdout
	if c.output != nil {
		w = c.output
	}
	fmt.Fprint(w, c.Help())
}
