package duetvm

// Run executes instructions until the program halts.
// It yields InterruptBlocked before a receive on an empty queue; if the queue is
// still empty when yield returns, Run returns. It yields InterruptRecovered after
// a sound-mode receive recovers a nonzero frequency.
func (p *Program) Run(yield func(*Interrupt, error) bool) {
	for {
		if p.Halted() {
			return
		}

		if p.Blocked() {
			if !yield(InterruptBlocked, nil) {
				return
			}
			if p.Blocked() {
				return
			}
		}

		if p.MaxSteps > 0 && p.Steps >= p.MaxSteps {
			yield(nil, ErrStepLimit)
			return
		}

		inst := p.Code[p.PC]
		if err := p.Step(); err != nil {
			yield(nil, err)
			return
		}

		// a receive before any nonzero snd recovers 0 and is not reported
		if inst.Op == OpRcv &&
			p.Mode != ModeDuet &&
			p.Registers.Get(inst.Register) != 0 &&
			p.Recovered != 0 {
			if !yield(InterruptRecovered, nil) {
				return
			}
		}
	}
}
