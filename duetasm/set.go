package duetasm

import (
	"slices"

	"github.com/reusee/duet/duetvm"
)

type argShape uint8

const (
	// snd X
	shapeX argShape = iota
	// set R Y
	shapeRY
	// rcv R
	shapeR
	// jgz X Y
	shapeXY
)

var shapes = map[duetvm.OpCode]argShape{
	duetvm.OpSnd: shapeX,
	duetvm.OpSet: shapeRY,
	duetvm.OpAdd: shapeRY,
	duetvm.OpSub: shapeRY,
	duetvm.OpMul: shapeRY,
	duetvm.OpMod: shapeRY,
	duetvm.OpRcv: shapeR,
	duetvm.OpJgz: shapeXY,
	duetvm.OpJnz: shapeXY,
}

// InstructionSet lists the ops a program may use.
type InstructionSet []duetvm.OpCode

var (
	DuetSet = InstructionSet{
		duetvm.OpSnd,
		duetvm.OpSet,
		duetvm.OpAdd,
		duetvm.OpMul,
		duetvm.OpMod,
		duetvm.OpRcv,
		duetvm.OpJgz,
	}

	CoprocessorSet = InstructionSet{
		duetvm.OpSet,
		duetvm.OpSub,
		duetvm.OpMul,
		duetvm.OpJnz,
	}
)

func SetForMode(mode duetvm.Mode) InstructionSet {
	if mode == duetvm.ModeCoprocessor {
		return CoprocessorSet
	}
	return DuetSet
}

func (s InstructionSet) lookup(name string) (duetvm.OpCode, bool) {
	op, ok := duetvm.LookupOp(name)
	if !ok || !slices.Contains(s, op) {
		return 0, false
	}
	return op, true
}
