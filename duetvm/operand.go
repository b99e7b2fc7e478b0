package duetvm

import "strconv"

type OperandKind uint8

const (
	OperandLiteral OperandKind = iota
	OperandRegister
)

// Operand is either a literal integer or a reference to a register.
type Operand struct {
	Kind     OperandKind
	Value    int64
	Register byte
}

func Literal(n int64) Operand {
	return Operand{
		Kind:  OperandLiteral,
		Value: n,
	}
}

func RegisterRef(name byte) Operand {
	return Operand{
		Kind:     OperandRegister,
		Register: name,
	}
}

// Resolve never modifies the registers.
func (o Operand) Resolve(regs Registers) int64 {
	if o.Kind == OperandRegister {
		return regs.Get(o.Register)
	}
	return o.Value
}

func (o Operand) String() string {
	if o.Kind == OperandRegister {
		return string(rune(o.Register))
	}
	return strconv.FormatInt(o.Value, 10)
}
