package debugs

import (
	"github.com/reusee/duet/duetvm"
)

// ProgramGlobals exposes a snapshot of a program's state to a tap session.
func ProgramGlobals(p *duetvm.Program) map[string]any {
	regs := p.Registers.Clone()
	code := make([]string, len(p.Code))
	for i, inst := range p.Code {
		code[i] = inst.String()
	}
	return map[string]any{
		"pc":        p.PC,
		"steps":     p.Steps,
		"sent":      p.Sent,
		"recovered": p.Recovered,
		"halted":    p.Halted(),
		"blocked":   p.Blocked(),
		"registers": regs.Map(),
		"pending":   p.In.Values(),
		"profile":   p.Profile.Map(),
		"code":      code,
		"reg": func(name string) int64 {
			if len(name) != 1 {
				return 0
			}
			return regs.Get(name[0])
		},
	}
}
