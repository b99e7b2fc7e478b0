package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Warn("test", "hello", "world!")
	})
}

func TestJournalKey(t *testing.T) {
	if key := toJournalKey("duet.span-id"); key != "DUET_SPAN_ID" {
		t.Fatalf("got %s", key)
	}
}

func TestWrapSpan(t *testing.T) {
	base := errors.New("foo")
	if err := WrapSpan(context.Background(), base); err != base {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	err := WrapSpan(ctx, base)
	if !errors.Is(err, base) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "span abc") {
		t.Fatalf("got %v", err)
	}
	if WrapSpan(ctx, nil) != nil {
		t.Fatal()
	}
}

func TestNewSpan(t *testing.T) {
	SetLevel(slog.LevelInfo)
	defer SetLevel(slog.LevelWarn)

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
		logger Logger,
	) {
		ctx := context.Background()

		ctx1, span1 := newSpan(ctx, "run")
		ctx2, span2 := newSpan(ctx1, "program 0")
		logger.InfoContext(ctx2, "step")

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "span="+string(span1)) ||
			!strings.Contains(lines[0], "what=run") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "span="+string(span2)) ||
			!strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "span="+string(span2)) {
			t.Fatalf("got %v", lines[2])
		}
	})
}
