package duetvm

// RunSound runs code in sound mode until the first nonzero frequency is recovered or the program halts.
func RunSound(code []Instruction, maxSteps int) (*Program, error) {
	p := NewProgram(code, ModeSound)
	p.MaxSteps = maxSteps
	for interrupt, err := range p.Run {
		if err != nil {
			return p, err
		}
		if interrupt.Recovered {
			break
		}
	}
	return p, nil
}

// RunProfiled runs code in coprocessor mode until it halts, counting executed opcodes.
func RunProfiled(code []Instruction, maxSteps int) (*Program, error) {
	p := NewProgram(code, ModeCoprocessor)
	p.MaxSteps = maxSteps
	for _, err := range p.Run {
		if err != nil {
			return p, err
		}
	}
	return p, nil
}
