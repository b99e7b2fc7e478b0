package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/duet/duetvm"
	"gopkg.in/yaml.v3"
)

func duetReport(t *testing.T) Report {
	d, err := duetvm.NewDuet([]duetvm.Instruction{
		duetvm.Snd(duetvm.Literal(1)),
		duetvm.Snd(duetvm.Literal(2)),
		duetvm.Snd(duetvm.RegisterRef('p')),
		duetvm.Rcv('a'),
		duetvm.Rcv('b'),
		duetvm.Rcv('c'),
		duetvm.Rcv('d'),
	}, duetvm.DuetOptions{Measured: 1})
	if err != nil {
		t.Fatal(err)
	}
	res, err := d.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return FromDuet("send.txt", res, 1)
}

func TestWriteText(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := Write(buf, FormatText, duetReport(t)); err != nil {
		t.Fatal(err)
	}
	line := buf.String()
	for _, expected := range []string{
		"file=send.txt",
		"mode=duet",
		"result=3",
		"state=deadlocked",
		"registers=a:1,b:2,c:0,p:1",
	} {
		if !strings.Contains(line, expected) {
			t.Fatalf("got %s", line)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := Write(buf, FormatJSON, duetReport(t)); err != nil {
		t.Fatal(err)
	}
	var decoded []Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 1 || decoded[0].Result != 3 || decoded[0].State != "deadlocked" {
		t.Fatalf("got %+v", decoded)
	}
}

func TestWriteYAML(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := Write(buf, FormatYAML, duetReport(t)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "result: 3") {
		t.Fatalf("got %s", buf.String())
	}
	var decoded []Report
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded[0].Registers["p"] != 1 {
		t.Fatalf("got %+v", decoded)
	}
}

func TestSoundAndProfiledReports(t *testing.T) {
	p, err := duetvm.RunSound([]duetvm.Instruction{
		duetvm.Snd(duetvm.Literal(9)),
		duetvm.Rcv('z'),
		duetvm.Set('z', duetvm.Literal(1)),
		duetvm.Rcv('z'),
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	r := FromSound("s", p)
	if r.Result != 9 || r.State != "recovered" {
		t.Fatalf("got %+v", r)
	}

	p, err = duetvm.RunProfiled([]duetvm.Instruction{
		duetvm.Set('a', duetvm.Literal(3)),
		duetvm.Mul('a', duetvm.Literal(3)),
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	r = FromProfiled("c", p)
	if r.Result != 1 || r.Profile["set"] != 1 {
		t.Fatalf("got %+v", r)
	}
}

func TestErrorReport(t *testing.T) {
	buf := new(bytes.Buffer)
	r := FromError("bad.txt", duetvm.ModeSound, errors.New("bad line"))
	if err := Write(buf, "", r); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `error="bad line"`) {
		t.Fatalf("got %s", buf.String())
	}
}

func TestFormat(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil || f != FormatYAML {
		t.Fatalf("got %v %v", f, err)
	}
	if err := f.UnmarshalText([]byte("xml")); err == nil {
		t.Fatal("should error")
	}
	if err := Write(new(bytes.Buffer), "xml"); err == nil {
		t.Fatal("should error")
	}
}
