package duetvm

type Interrupt struct {
	Blocked   bool
	Recovered bool
}

var (
	InterruptBlocked = &Interrupt{
		Blocked: true,
	}
	InterruptRecovered = &Interrupt{
		Recovered: true,
	}
)
