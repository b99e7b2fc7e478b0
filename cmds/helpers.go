package cmds

// Var defines "name <value>" to set the returned variable and "name." to reset it.
func Var[T any](name string, desc string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))
	return &value
}

// Switch defines "name" to turn the returned flag on and "!name" to turn it off.
func Switch(name string, desc string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(desc))
	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))
	return &value
}

// Collect defines "name <value>" appending to the returned slice.
func Collect[T any](name string, desc string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(desc))
	return &value
}
