package duetvm

import (
	"maps"
	"slices"

	"github.com/samber/lo"
)

// Registers maps single-letter register names to values. Absent registers read as zero.
type Registers map[byte]int64

func NewRegisters() Registers {
	return make(Registers)
}

func (r Registers) Get(name byte) int64 {
	return r[name]
}

func (r Registers) Set(name byte, value int64) {
	r[name] = value
}

func (r Registers) Names() []byte {
	names := lo.Keys(r)
	slices.Sort(names)
	return names
}

func (r Registers) Clone() Registers {
	if r == nil {
		return NewRegisters()
	}
	return maps.Clone(r)
}

// Map returns the registers keyed by their printable names.
func (r Registers) Map() map[string]int64 {
	return lo.MapKeys(r, func(_ int64, name byte) string {
		return string(rune(name))
	})
}
