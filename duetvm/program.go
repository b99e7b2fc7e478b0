package duetvm

import "fmt"

// Program is the state of one running instance of a parsed instruction sequence.
type Program struct {
	Code      []Instruction
	Mode      Mode
	Registers Registers
	PC        int
	In        *Queue
	Out       *Queue

	// values sent in duet mode
	Sent int
	// sound mode
	Played       int64
	Recovered    int64
	HasRecovered bool

	Steps    int
	MaxSteps int // 0 for no limit
	Profile  Profile
}

func NewProgram(code []Instruction, mode Mode) *Program {
	return &Program{
		Code:      code,
		Mode:      mode,
		Registers: NewRegisters(),
		In:        NewQueue(),
		Out:       NewQueue(),
		Profile:   make(Profile),
	}
}

// Halted reports whether the program counter is outside the program.
func (p *Program) Halted() bool {
	return p.PC < 0 || p.PC >= len(p.Code)
}

// Blocked reports whether the next instruction is a duet receive on an empty queue.
func (p *Program) Blocked() bool {
	if p.Mode != ModeDuet || p.Halted() {
		return false
	}
	return p.Code[p.PC].Op == OpRcv && p.In.Len() == 0
}

// Step executes the instruction at the program counter.
func (p *Program) Step() error {
	if p.Halted() {
		return fmt.Errorf("step halted program: pc %d", p.PC)
	}
	if err := p.Apply(p.Code[p.PC]); err != nil {
		return err
	}
	p.Steps++
	return nil
}

// Apply executes one instruction against the program state.
func (p *Program) Apply(inst Instruction) error {
	regs := p.Registers
	next := p.PC + 1

	switch inst.Op {

	case OpSnd:
		value := inst.X.Resolve(regs)
		if p.Mode == ModeDuet {
			p.Out.Push(value)
			p.Sent++
		} else {
			p.Played = value
		}

	case OpSet:
		regs.Set(inst.Register, inst.Y.Resolve(regs))

	case OpAdd:
		regs.Set(inst.Register, regs.Get(inst.Register)+inst.Y.Resolve(regs))

	case OpSub:
		regs.Set(inst.Register, regs.Get(inst.Register)-inst.Y.Resolve(regs))

	case OpMul:
		regs.Set(inst.Register, regs.Get(inst.Register)*inst.Y.Resolve(regs))

	case OpMod:
		// modulo by zero leaves the register unchanged
		if y := inst.Y.Resolve(regs); y != 0 {
			regs.Set(inst.Register, regs.Get(inst.Register)%y)
		}

	case OpRcv:
		if p.Mode == ModeDuet {
			value, ok := p.In.Pop()
			if !ok {
				return fmt.Errorf("%w: pc %d", ErrQueueUnderflow, p.PC)
			}
			regs.Set(inst.Register, value)
		} else if regs.Get(inst.Register) != 0 {
			p.Recovered = p.Played
			p.HasRecovered = true
		}

	case OpJgz:
		if inst.X.Resolve(regs) > 0 {
			next = p.PC + int(inst.Y.Resolve(regs))
		}

	case OpJnz:
		if inst.X.Resolve(regs) != 0 {
			next = p.PC + int(inst.Y.Resolve(regs))
		}

	default:
		return fmt.Errorf("unknown op: %v", inst.Op)
	}

	if p.Profile != nil {
		p.Profile[inst.Op]++
	}
	p.PC = next
	return nil
}
