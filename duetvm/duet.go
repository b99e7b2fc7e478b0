package duetvm

import (
	"context"
	"fmt"
	"log/slog"
)

type DuetState uint8

const (
	DuetRunning DuetState = iota
	// both programs ran off the end of their code
	DuetBothHalted
	// both programs wait on empty queues
	DuetDeadlocked
	// one program halted, the other waits on a queue nobody will fill
	DuetStarved
)

func (s DuetState) String() string {
	switch s {
	case DuetRunning:
		return "running"
	case DuetBothHalted:
		return "halted"
	case DuetDeadlocked:
		return "deadlocked"
	case DuetStarved:
		return "starved"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

func (s DuetState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type DuetOptions struct {
	// register preset to the program's identity, 'p' if zero
	IdentityRegister byte
	// identity of the program whose sends are counted
	Measured int
	MaxSteps int
	Logger   *slog.Logger
}

// Duet runs two copies of one program that talk over a pair of queues.
// Program i has its identity register preset to i; each program's outbound
// queue is the other's inbound queue.
type Duet struct {
	Programs [2]*Program
	Measured int
	Turns    int
	State    DuetState
	Logger   *slog.Logger
}

type DuetResult struct {
	// values sent by the measured program
	Sent     int
	State    DuetState
	Turns    int
	Programs [2]*Program
}

func NewDuet(code []Instruction, options DuetOptions) (*Duet, error) {
	if options.Measured != 0 && options.Measured != 1 {
		return nil, fmt.Errorf("measured program must be 0 or 1, got %d", options.Measured)
	}
	register := options.IdentityRegister
	if register == 0 {
		register = 'p'
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	aToB := NewQueue()
	bToA := NewQueue()
	d := &Duet{
		Measured: options.Measured,
		Logger:   logger,
	}
	for id := range d.Programs {
		p := NewProgram(code, ModeDuet)
		p.MaxSteps = options.MaxSteps
		p.Registers.Set(register, int64(id))
		if id == 0 {
			p.In, p.Out = bToA, aToB
		} else {
			p.In, p.Out = aToB, bToA
		}
		d.Programs[id] = p
	}
	return d, nil
}

// Run alternates turns until both programs are halted or blocked. Each turn runs
// one program until it blocks or halts, which is equivalent to interleaving
// single steps since only a receive can stop a program early.
func (d *Duet) Run(ctx context.Context) (*DuetResult, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if state := d.check(); state != DuetRunning {
			d.State = state
			d.Logger.InfoContext(ctx, "duet finished",
				"state", state,
				"turns", d.Turns,
				"sent0", d.Programs[0].Sent,
				"sent1", d.Programs[1].Sent,
			)
			return &DuetResult{
				Sent:     d.Programs[d.Measured].Sent,
				State:    state,
				Turns:    d.Turns,
				Programs: d.Programs,
			}, nil
		}

		for id, p := range d.Programs {
			if err := d.turn(ctx, id, p); err != nil {
				return nil, fmt.Errorf("program %d: %w", id, err)
			}
		}
		d.Turns++
	}
}

func (d *Duet) turn(ctx context.Context, id int, p *Program) error {
	steps := p.Steps
	for interrupt, err := range p.Run {
		if err != nil {
			return err
		}
		if interrupt.Blocked {
			break
		}
	}
	d.Logger.DebugContext(ctx, "turn",
		"program", id,
		"turn", d.Turns,
		"steps", p.Steps-steps,
		"pc", p.PC,
		"halted", p.Halted(),
		"pending", p.In.Len(),
	)
	return nil
}

func (d *Duet) check() DuetState {
	var halted, blocked int
	for _, p := range d.Programs {
		switch {
		case p.Halted():
			halted++
		case p.Blocked():
			blocked++
		}
	}
	switch {
	case halted == 2:
		return DuetBothHalted
	case blocked == 2:
		return DuetDeadlocked
	case halted+blocked == 2:
		return DuetStarved
	}
	return DuetRunning
}
