package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/duet/duetasm"
	"github.com/reusee/duet/duetvm"
	"github.com/reusee/duet/logs"
)

func runREPL(logger logs.Logger) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".duet_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	machine := newREPLMachine()
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		out, err := machine.exec(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	logger.Info("repl end",
		"steps", machine.program.Steps,
	)
}

// replMachine applies typed instructions to a sound-mode program one at a time.
type replMachine struct {
	program *duetvm.Program
}

func newREPLMachine() *replMachine {
	return &replMachine{
		program: duetvm.NewProgram(nil, duetvm.ModeSound),
	}
}

func (m *replMachine) exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return "", nil
	case ":regs":
		return formatRegisters(m.program.Registers), nil
	case ":reset":
		m.program = duetvm.NewProgram(nil, duetvm.ModeSound)
		return "", nil
	}

	inst, err := duetasm.ParseInstruction(line, duetasm.DuetSet)
	if err != nil {
		return "", err
	}
	if err := m.program.Apply(inst); err != nil {
		return "", err
	}
	m.program.Steps++

	switch inst.Op {
	case duetvm.OpSnd:
		return fmt.Sprintf("played %d", m.program.Played), nil
	case duetvm.OpRcv:
		if m.program.Registers.Get(inst.Register) != 0 {
			return fmt.Sprintf("recovered %d", m.program.Recovered), nil
		}
		return "", nil
	case duetvm.OpJgz:
		return fmt.Sprintf("pc %d", m.program.PC), nil
	}
	return fmt.Sprintf("%c=%d", inst.Register, m.program.Registers.Get(inst.Register)), nil
}

func formatRegisters(regs duetvm.Registers) string {
	var b strings.Builder
	for i, name := range regs.Names() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%c=%d", name, regs.Get(name))
	}
	return b.String()
}
