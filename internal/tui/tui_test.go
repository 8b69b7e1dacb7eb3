package tui

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/san-kum/termresume/internal/config"
	"github.com/san-kum/termresume/internal/physics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPrintReduced(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ReducedMotion = true

	var buf bytes.Buffer
	if err := NewPrinter(&buf, cfg, 100, nil).Print(context.Background()); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, hideCursor) || !strings.HasSuffix(out, showCursor) {
		t.Error("cursor should be hidden while printing and restored after")
	}
	for _, pr := range cfg.Content.Intro {
		if !strings.Contains(out, pr.Sig+" "+pr.Cmd) {
			t.Errorf("missing intro prompt %q", pr.Cmd)
		}
	}
	last := -1
	for _, pn := range cfg.Content.Panes {
		i := strings.Index(out, pn.Header)
		if i < 0 {
			t.Errorf("missing header %q", pn.Header)
			continue
		}
		if i < last {
			t.Errorf("header %q out of order", pn.Header)
		}
		last = i
	}
	if !strings.Contains(out, "Tooling Proficiency") {
		t.Error("skills table missing")
	}
}

func TestPrintTyped(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RevealRate = time.Microsecond
	cfg.Content.Intro = cfg.Content.Intro[:1]

	var buf bytes.Buffer
	if err := NewPrinter(&buf, cfg, 80, nil).Print(context.Background()); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	pr := cfg.Content.Intro[0]
	if !strings.Contains(buf.String(), pr.Sig+" "+pr.Cmd+"\n") {
		t.Errorf("typed prompt not written in full: %q", buf.String()[:80])
	}
}

func TestPrintCancelled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RevealRate = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewPrinter(&buf, cfg, 80, nil).Print(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !strings.HasSuffix(buf.String(), showCursor) {
		t.Error("cursor not restored after cancel")
	}
}

func TestLiveRenderer(t *testing.T) {
	g := physics.NewGraph(physics.DefaultParams(), []physics.Node{
		{ID: "a", Label: "A", X: 200, Y: 200, R: 60},
	}, rand.New(rand.NewSource(1)))

	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, 40, 8, 0)
	r.Start()
	r.OnStep(1, g, 2)
	r.OnStep(2, g, 1)
	r.Stop()

	out := buf.String()
	if n := strings.Count(out, clearScreen); n != 2 {
		t.Errorf("expected 2 frames, got %d", n)
	}
	if !strings.Contains(out, "frame=2") || !strings.Contains(out, "collisions=3") {
		t.Errorf("unexpected status: %q", out)
	}
}

func TestLiveRendererThrottles(t *testing.T) {
	g := physics.NewGraph(physics.DefaultParams(), nil, rand.New(rand.NewSource(1)))
	now := time.Unix(100, 0)

	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, 20, 4, 10)
	r.now = func() time.Time { return now }

	r.OnStep(1, g, 0)
	r.OnStep(2, g, 0)
	now = now.Add(150 * time.Millisecond)
	r.OnStep(3, g, 0)

	if n := strings.Count(buf.String(), clearScreen); n != 2 {
		t.Errorf("expected 2 frames at 10fps, got %d", n)
	}
}
