package reports

import (
	"github.com/reusee/duet/duetvm"
)

// Report summarizes one run. Result is the recovered frequency in sound mode,
// the number of executed muls in coprocessor mode, and the number of values
// sent by the measured program in duet mode.
type Report struct {
	File      string           `json:"file" yaml:"file"`
	Mode      string           `json:"mode" yaml:"mode"`
	Result    int64            `json:"result" yaml:"result"`
	State     string           `json:"state,omitempty" yaml:"state,omitempty"`
	Turns     int              `json:"turns,omitempty" yaml:"turns,omitempty"`
	Steps     int              `json:"steps" yaml:"steps"`
	Registers map[string]int64 `json:"registers,omitempty" yaml:"registers,omitempty"`
	Profile   map[string]int   `json:"profile,omitempty" yaml:"profile,omitempty"`
	Error     string           `json:"error,omitempty" yaml:"error,omitempty"`
}

func FromSound(file string, p *duetvm.Program) Report {
	state := "halted"
	if p.Recovered != 0 {
		state = "recovered"
	}
	return Report{
		File:      file,
		Mode:      duetvm.ModeSound.String(),
		Result:    p.Recovered,
		State:     state,
		Steps:     p.Steps,
		Registers: p.Registers.Map(),
	}
}

func FromProfiled(file string, p *duetvm.Program) Report {
	return Report{
		File:      file,
		Mode:      duetvm.ModeCoprocessor.String(),
		Result:    int64(p.Profile[duetvm.OpMul]),
		State:     "halted",
		Steps:     p.Steps,
		Registers: p.Registers.Map(),
		Profile:   p.Profile.Map(),
	}
}

func FromDuet(file string, res *duetvm.DuetResult, measured int) Report {
	p := res.Programs[measured]
	return Report{
		File:      file,
		Mode:      duetvm.ModeDuet.String(),
		Result:    int64(res.Sent),
		State:     res.State.String(),
		Turns:     res.Turns,
		Steps:     p.Steps,
		Registers: p.Registers.Map(),
	}
}

func FromError(file string, mode duetvm.Mode, err error) Report {
	return Report{
		File:  file,
		Mode:  mode.String(),
		State: "failed",
		Error: err.Error(),
	}
}
