package duetasm

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/reusee/duet/duetvm"
)

var (
	registerPattern = regexp.MustCompile(`^[a-z]$`)
	literalPattern  = regexp.MustCompile(`^-?[0-9]+$`)
)

// Parse reads one instruction per line. Blank lines are skipped.
// Any malformed line fails the whole parse.
func Parse(name string, source io.Reader, set InstructionSet) ([]duetvm.Instruction, error) {
	var lines []string
	scanner := bufio.NewScanner(source)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return ParseLines(name, lines, set)
}

func ParseLines(name string, lines []string, set InstructionSet) (ret []duetvm.Instruction, err error) {
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		inst, err := ParseInstruction(line, set)
		if err != nil {
			return nil, &ParseError{
				Name: name,
				Line: i + 1,
				Text: line,
				Err:  err,
			}
		}
		inst.Line = i + 1
		ret = append(ret, inst)
	}
	return ret, nil
}

func ParseInstruction(line string, set InstructionSet) (inst duetvm.Instruction, err error) {
	fields := strings.Split(line, " ")
	if len(fields) < 2 || len(fields) > 3 {
		return inst, fmt.Errorf("%w: want <op> <arg> [<arg>]", ErrSyntax)
	}

	op, ok := set.lookup(fields[0])
	if !ok {
		return inst, fmt.Errorf("%w: %s", ErrUnknownOp, fields[0])
	}
	inst.Op = op
	args := fields[1:]

	switch shapes[op] {

	case shapeX:
		if len(args) != 1 {
			return inst, fmt.Errorf("%w: %s takes 1 argument", ErrSyntax, op)
		}
		inst.X, err = parseOperand(args[0])

	case shapeR:
		if len(args) != 1 {
			return inst, fmt.Errorf("%w: %s takes 1 argument", ErrSyntax, op)
		}
		inst.Register, err = parseRegister(args[0])

	case shapeRY:
		if len(args) != 2 {
			return inst, fmt.Errorf("%w: %s takes 2 arguments", ErrSyntax, op)
		}
		if inst.Register, err = parseRegister(args[0]); err != nil {
			return
		}
		inst.Y, err = parseOperand(args[1])

	case shapeXY:
		if len(args) != 2 {
			return inst, fmt.Errorf("%w: %s takes 2 arguments", ErrSyntax, op)
		}
		if inst.X, err = parseOperand(args[0]); err != nil {
			return
		}
		inst.Y, err = parseOperand(args[1])

	}

	return
}

func parseRegister(arg string) (byte, error) {
	if !registerPattern.MatchString(arg) {
		return 0, fmt.Errorf("%w: bad register %s", ErrSyntax, arg)
	}
	return arg[0], nil
}

func parseOperand(arg string) (duetvm.Operand, error) {
	if registerPattern.MatchString(arg) {
		return duetvm.RegisterRef(arg[0]), nil
	}
	if !literalPattern.MatchString(arg) {
		return duetvm.Operand{}, fmt.Errorf("%w: bad operand %s", ErrSyntax, arg)
	}
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return duetvm.Operand{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return duetvm.Literal(n), nil
}
