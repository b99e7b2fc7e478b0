package cmds

import (
	"fmt"
	"strings"
	"testing"
)

type testMode int

func (m *testMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "a":
		*m = 1
	case "b":
		*m = 2
	default:
		return fmt.Errorf("bad mode %s", text)
	}
	return nil
}

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"a"})
	if !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("help", Func(func() {}))
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"foo", "42", "foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 || s != "foo" {
		t.Fatalf("got %v %v", n, s)
	}

	if err := executor.Execute([]string{"foo", "99"}); err != nil {
		t.Fatal(err)
	}
	if n != 99 || s != "" {
		t.Fatalf("got %v %v", n, s)
	}

	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 || s != "" {
		t.Fatalf("got %v %v", n, s)
	}
}

func TestTextAndByteArguments(t *testing.T) {
	executor := NewExecutor()
	var mode testMode
	var register byte
	executor.Define("mode", Func(func(m testMode) {
		mode = m
	}))
	executor.Define("reg", Func(func(b byte) {
		register = b
	}))

	if err := executor.Execute([]string{"mode", "b", "reg", "q"}); err != nil {
		t.Fatal(err)
	}
	if mode != 2 || register != 'q' {
		t.Fatalf("got %v %c", mode, register)
	}

	if err := executor.Execute([]string{"mode", "c"}); err == nil {
		t.Fatal("should error")
	}
	if err := executor.Execute([]string{"reg", "pq"}); err == nil {
		t.Fatal("should error")
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fail", Func(func() error {
		return fmt.Errorf("boom")
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	err := executor.Execute([]string{"fail"})
	if err == nil || !strings.Contains(err.Error(), "fail: boom") {
		t.Fatalf("got %v", err)
	}
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Func(func(i int) {}).Desc("FOO"))
	buf := new(strings.Builder)
	executor.PrintUsage(buf)
	if !strings.Contains(buf.String(), "foo <int>\n\tFOO") {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "-h (help, -help, --help)") {
		t.Fatalf("got %s", buf.String())
	}
}
