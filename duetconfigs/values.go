package duetconfigs

import (
	"fmt"

	"github.com/reusee/duet/cmds"
	"github.com/reusee/duet/configs"
	"github.com/reusee/duet/duetvm"
	"github.com/reusee/duet/vars"
)

// MaxSteps limits the instructions each program may execute. Zero means no limit.
type MaxSteps int

var maxStepsFlag = cmds.Var[int]("-max-steps", "limit instructions executed per program")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, "max_steps"),
	))
}

// IdentityRegister is preset to each duet program's identity.
type IdentityRegister byte

func (r *IdentityRegister) UnmarshalText(text []byte) error {
	if len(text) != 1 || text[0] < 'a' || text[0] > 'z' {
		return fmt.Errorf("identity register must be a lowercase letter, got %q", text)
	}
	*r = IdentityRegister(text[0])
	return nil
}

var identityFlag = cmds.Var[IdentityRegister]("-identity", "register holding the program identity")

func (Module) IdentityRegister(
	loader configs.Loader,
) IdentityRegister {
	var fromConfig IdentityRegister
	if str := configs.First[string](loader, "identity_register"); str != "" {
		fromConfig = IdentityRegister(str[0])
	}
	return vars.FirstNonZero(
		*identityFlag,
		fromConfig,
		'p',
	)
}

// MeasuredProgram is the identity of the duet program whose sends are reported.
type MeasuredProgram int

var measuredFlag = cmds.Var[*int]("-measured", "identity of the program whose sends are counted")

func (Module) MeasuredProgram(
	loader configs.Loader,
) MeasuredProgram {
	if n := vars.FirstNonZero(
		*measuredFlag,
		configs.First[*int](loader, "measured_program"),
	); n != nil {
		return MeasuredProgram(*n)
	}
	return 1
}

var modeFlag = cmds.Var[*duetvm.Mode]("-mode", "sound, duet or coprocessor")

// Mode panics on values the schema would reject.
func (Module) Mode(
	loader configs.Loader,
) duetvm.Mode {
	if *modeFlag != nil {
		return **modeFlag
	}
	mode, err := duetvm.ParseMode(vars.DerefOrZero(
		configs.First[*string](loader, "mode"),
	))
	if err != nil {
		panic(err)
	}
	return mode
}

// Parallel bounds how many input files run at once.
type Parallel int

var parallelFlag = cmds.Var[int]("-parallel", "number of files to run concurrently")

func (Module) Parallel(
	loader configs.Loader,
) Parallel {
	return Parallel(vars.FirstNonZero(
		*parallelFlag,
		configs.First[int](loader, "parallel"),
		4,
	))
}
