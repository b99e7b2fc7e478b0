package duetvm

import "fmt"

// Mode selects the meaning of snd and rcv.
type Mode uint8

const (
	// ModeDuet sends to and receives from the paired program's queues.
	ModeDuet Mode = iota
	// ModeSound plays and recovers frequencies.
	ModeSound
	// ModeCoprocessor runs the set/sub/mul/jnz instruction set to completion.
	ModeCoprocessor
)

func (m Mode) String() string {
	switch m {
	case ModeDuet:
		return "duet"
	case ModeSound:
		return "sound"
	case ModeCoprocessor:
		return "coprocessor"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

func ParseMode(str string) (Mode, error) {
	switch str {
	case "duet", "":
		return ModeDuet, nil
	case "sound":
		return ModeSound, nil
	case "coprocessor":
		return ModeCoprocessor, nil
	}
	return 0, fmt.Errorf("unknown mode: %s", str)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
