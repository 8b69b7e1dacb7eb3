package video

import (
	"errors"
	"testing"
	"time"
)

func TestToggle(t *testing.T) {
	p := New("clip.mp4", time.Minute)

	if p.Toggle() == nil || !p.Playing() {
		t.Fatal("toggle should start playback")
	}
	if p.Toggle() != nil || p.Playing() {
		t.Fatal("toggle should pause playback")
	}
}

func TestSeekClamps(t *testing.T) {
	tests := []struct {
		name  string
		start time.Duration
		delta time.Duration
		want  time.Duration
	}{
		{"forward", 10 * time.Second, SeekStep, 15 * time.Second},
		{"back", 10 * time.Second, -SeekStep, 5 * time.Second},
		{"before start", 3 * time.Second, -SeekStep, 0},
		{"past end", 58 * time.Second, SeekStep, time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("clip.mp4", time.Minute)
			p.Seek(tt.start)
			p.Seek(tt.delta)
			if p.Position() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, p.Position())
			}
		})
	}
}

func TestMute(t *testing.T) {
	p := New("clip.mp4", time.Minute)
	p.ToggleMute()
	if !p.Muted() {
		t.Error("expected muted")
	}
	p.ToggleMute()
	if p.Muted() {
		t.Error("expected unmuted")
	}
}

func TestFullscreenUnsupported(t *testing.T) {
	p := New("clip.mp4", time.Minute, WithFullscreen(false))
	if err := p.ToggleFullscreen(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if p.Fullscreen() {
		t.Error("state changed on unsupported request")
	}

	p = New("clip.mp4", time.Minute)
	if err := p.ToggleFullscreen(); err != nil || !p.Fullscreen() {
		t.Errorf("expected fullscreen, got %v", err)
	}
}

func TestTicksAdvanceUntilEnd(t *testing.T) {
	p := New("clip.mp4", time.Second)
	p.Play()

	t0 := time.Unix(0, 0)
	if p.Update(TickMsg{ID: p.id, Gen: p.gen, Time: t0}) == nil {
		t.Fatal("expected another tick")
	}
	if p.Position() != tickRate {
		t.Errorf("first tick should count one tick interval, got %v", p.Position())
	}

	if p.Update(TickMsg{ID: p.id, Gen: p.gen, Time: t0.Add(2 * time.Second)}) != nil {
		t.Error("playback should stop at the end")
	}
	if p.Position() != time.Second || p.Playing() {
		t.Errorf("expected stopped at end, got %v playing=%v", p.Position(), p.Playing())
	}

	p.Play()
	if p.Position() != 0 {
		t.Error("playing from the end should restart")
	}
}

func TestStaleTicksIgnored(t *testing.T) {
	p := New("clip.mp4", time.Minute)
	p.Play()
	stale := TickMsg{ID: p.id, Gen: p.gen, Time: time.Now()}
	p.Pause()
	p.Play()

	if p.Update(stale) != nil || p.Position() != 0 {
		t.Error("tick from an earlier play should be ignored")
	}
}

func TestStatus(t *testing.T) {
	p := New("clip.mp4", 95*time.Second)
	p.Seek(65 * time.Second)
	p.ToggleMute()

	if got, want := p.Status(), "paused · muted 1:05 / 1:35"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
