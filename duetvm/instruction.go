package duetvm

import "fmt"

// Instruction is an immutable tagged value. Which fields are meaningful depends on Op:
//
//	snd X, jgz X Y, jnz X Y use X and Y
//	set/add/mul/mod/sub R Y use Register and Y
//	rcv R uses Register
type Instruction struct {
	Op       OpCode
	Register byte
	X        Operand
	Y        Operand
	Line     int
}

func Snd(x Operand) Instruction {
	return Instruction{Op: OpSnd, X: x}
}

func Set(r byte, y Operand) Instruction {
	return Instruction{Op: OpSet, Register: r, Y: y}
}

func Add(r byte, y Operand) Instruction {
	return Instruction{Op: OpAdd, Register: r, Y: y}
}

func Mul(r byte, y Operand) Instruction {
	return Instruction{Op: OpMul, Register: r, Y: y}
}

func Mod(r byte, y Operand) Instruction {
	return Instruction{Op: OpMod, Register: r, Y: y}
}

func Sub(r byte, y Operand) Instruction {
	return Instruction{Op: OpSub, Register: r, Y: y}
}

func Rcv(r byte) Instruction {
	return Instruction{Op: OpRcv, Register: r}
}

func Jgz(x, y Operand) Instruction {
	return Instruction{Op: OpJgz, X: x, Y: y}
}

func Jnz(x, y Operand) Instruction {
	return Instruction{Op: OpJnz, X: x, Y: y}
}

func (i Instruction) String() string {
	switch i.Op {
	case OpSnd:
		return fmt.Sprintf("%s %s", i.Op, i.X)
	case OpRcv:
		return fmt.Sprintf("%s %c", i.Op, i.Register)
	case OpJgz, OpJnz:
		return fmt.Sprintf("%s %s %s", i.Op, i.X, i.Y)
	}
	return fmt.Sprintf("%s %c %s", i.Op, i.Register, i.Y)
}
