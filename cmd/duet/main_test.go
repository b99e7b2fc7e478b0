package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/duet/duetasm"
	"github.com/reusee/duet/duetvm"
	"github.com/reusee/duet/logs"
	"github.com/reusee/duet/modes"
)

const soundExample = `set a 1
add a 2
mul a a
mod a 5
snd a
set a 0
rcv a
jgz a -1
set a 1
jgz a -2
`

const sendExample = `snd 1
snd 2
snd p
rcv a
rcv b
rcv c
rcv d
`

func testScope(t *testing.T, defs ...any) dscope.Scope {
	buf := new(bytes.Buffer)
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return buf
		},
	).Fork(defs...)
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunSourceDuet(t *testing.T) {
	testScope(t).Call(func(
		runSource RunSource,
	) {
		p, report, err := runSource(context.Background(), "send", strings.NewReader(sendExample))
		if err != nil {
			t.Fatal(err)
		}
		if report.Result != 3 {
			t.Fatalf("got %+v", report)
		}
		if report.State != "deadlocked" {
			t.Fatalf("got %+v", report)
		}
		if p.Registers.Get('p') != 1 {
			t.Fatalf("got %v", p.Registers)
		}
	})
}

func TestRunSourceSound(t *testing.T) {
	testScope(t, func() duetvm.Mode {
		return duetvm.ModeSound
	}).Call(func(
		runSource RunSource,
	) {
		_, report, err := runSource(context.Background(), "sound", strings.NewReader(soundExample))
		if err != nil {
			t.Fatal(err)
		}
		if report.Result != 4 {
			t.Fatalf("got %+v", report)
		}
	})
}

func TestRunSourceParseError(t *testing.T) {
	testScope(t).Call(func(
		runSource RunSource,
	) {
		_, _, err := runSource(context.Background(), "bad", strings.NewReader("snd 1\nfoo a\n"))
		if !errors.Is(err, duetasm.ErrUnknownOp) {
			t.Fatalf("got %v", err)
		}
		var parseErr *duetasm.ParseError
		if !errors.As(err, &parseErr) || parseErr.Line != 2 {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "(span ") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestRunFilesOrder(t *testing.T) {
	send := writeFile(t, "send.txt", sendExample)
	bad := writeFile(t, "bad.txt", "rcv 5\n")
	missing := filepath.Join(t.TempDir(), "missing.txt")
	testScope(t).Call(func(
		runFiles RunFiles,
	) {
		results := runFiles(context.Background(), []string{send, bad, missing, send})
		if len(results) != 4 {
			t.Fatalf("got %d", len(results))
		}
		if results[0].err != nil || results[0].report.Result != 3 {
			t.Fatalf("got %+v", results[0])
		}
		if !errors.Is(results[1].err, duetasm.ErrSyntax) {
			t.Fatalf("got %v", results[1].err)
		}
		if results[1].report.State != "failed" || results[1].report.File != bad {
			t.Fatalf("got %+v", results[1].report)
		}
		if !errors.Is(results[2].err, os.ErrNotExist) {
			t.Fatalf("got %v", results[2].err)
		}
		if results[3].report.File != send || results[3].report.Result != 3 {
			t.Fatalf("got %+v", results[3])
		}
	})
}

func TestREPLMachine(t *testing.T) {
	m := newREPLMachine()
	for _, c := range []struct {
		line     string
		expected string
	}{
		{"set a 3", "a=3"},
		{"mul a a", "a=9"},
		{"snd a", "played 9"},
		{"rcv b", ""},
		{"rcv a", "recovered 9"},
		{"jgz a -2", "pc 3"},
		{"", ""},
		{":regs", "a=9"},
	} {
		out, err := m.exec(c.line)
		if err != nil {
			t.Fatalf("%s: %v", c.line, err)
		}
		if out != c.expected {
			t.Fatalf("%s: got %q", c.line, out)
		}
	}

	if _, err := m.exec("jnz a 1"); !errors.Is(err, duetasm.ErrUnknownOp) {
		t.Fatalf("got %v", err)
	}

	if out, _ := m.exec(":reset"); out != "" {
		t.Fatalf("got %q", out)
	}
	if out, _ := m.exec(":regs"); out != "" {
		t.Fatalf("got %q", out)
	}
}
