package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	names := slices.Clone(p.names)
	slices.Sort(names)
	for _, name := range names {
		command := p.commands[name]
		line := name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		for i := range command.Func.Type().NumIn() {
			line += fmt.Sprintf(" <%v>", command.Func.Type().In(i))
		}
		if command.Description != "" {
			line += "\n\t" + command.Description
		}
		fmt.Fprintln(w, line)
	}
}
