package duetvm

import "fmt"

type OpCode uint8

const (
	OpSnd OpCode = iota + 1
	OpSet
	OpAdd
	OpMul
	OpMod
	OpRcv
	OpJgz
	OpSub
	OpJnz
)

var opNames = map[OpCode]string{
	OpSnd: "snd",
	OpSet: "set",
	OpAdd: "add",
	OpMul: "mul",
	OpMod: "mod",
	OpRcv: "rcv",
	OpJgz: "jgz",
	OpSub: "sub",
	OpJnz: "jnz",
}

var opsByName = func() map[string]OpCode {
	ret := make(map[string]OpCode, len(opNames))
	for op, name := range opNames {
		ret[name] = op
	}
	return ret
}()

func (o OpCode) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

func LookupOp(name string) (OpCode, bool) {
	op, ok := opsByName[name]
	return op, ok
}

func (o OpCode) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
