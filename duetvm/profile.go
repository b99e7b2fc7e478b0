package duetvm

// Profile counts executed instructions per opcode.
type Profile map[OpCode]int

func (p Profile) Total() (n int) {
	for _, c := range p {
		n += c
	}
	return
}

func (p Profile) Map() map[string]int {
	ret := make(map[string]int, len(p))
	for op, c := range p {
		ret[op.String()] = c
	}
	return ret
}
