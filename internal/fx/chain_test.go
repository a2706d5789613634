package fx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/corvess/albumforge/internal/model"
)

// fakeProber serves durations from a map and counts lookups per path.
type fakeProber struct {
	durations map[string]float64
	calls     map[string]int
}

func newFakeProber(durations map[string]float64) *fakeProber {
	return &fakeProber{durations: durations, calls: make(map[string]int)}
}

func (f *fakeProber) Duration(ctx context.Context, path string) (float64, error) {
	f.calls[path]++
	seconds, ok := f.durations[path]
	if !ok {
		return 0, fmt.Errorf("no such file: %s", path)
	}
	return seconds, nil
}

func TestChain_Source_ResolvesAgainstRoot(t *testing.T) {
	c := NewChain(context.Background(), newFakeProber(nil), "/assets")

	if got := c.Source("intro.wav").Path; got != "/assets/intro.wav" {
		t.Errorf("Source() path = %q, want %q", got, "/assets/intro.wav")
	}
	if got := c.Source("/elsewhere/loop.wav").Path; got != "/elsewhere/loop.wav" {
		t.Errorf("Source() absolute path = %q, want unchanged", got)
	}
}

func TestChain_FadeIn_AppendsEffect(t *testing.T) {
	c := NewChain(context.Background(), newFakeProber(nil), "/assets")

	src := c.FadeIn(c.Source("amb.wav"), 2)
	if err := c.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if len(src.Effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(src.Effects))
	}
	fade, ok := src.Effects[0].(model.FadeIn)
	if !ok {
		t.Fatalf("effect = %T, want FadeIn", src.Effects[0])
	}
	if fade.Duration != 2 {
		t.Errorf("Duration = %v, want 2", fade.Duration)
	}
	if src.Path != "/assets/amb.wav" {
		t.Errorf("terminal path = %q, want unchanged", src.Path)
	}
}

func TestChain_FadeOut_AbsoluteStart(t *testing.T) {
	prober := newFakeProber(map[string]float64{"/assets/loop.wav": 120})
	c := NewChain(context.Background(), prober, "/assets")

	src := c.FadeOut(c.Source("loop.wav"), 40, 6.5)
	if err := c.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	fade := src.Effects[0].(model.FadeOut)
	if fade.Start != 40 || fade.Duration != 6.5 {
		t.Errorf("fade = %+v, want Start 40 Duration 6.5", fade)
	}
	// Absolute start with explicit duration needs no probe at all.
	if prober.calls["/assets/loop.wav"] != 0 {
		t.Errorf("probe calls = %d, want 0", prober.calls["/assets/loop.wav"])
	}
}

func TestChain_FadeOut_RelativeStart(t *testing.T) {
	prober := newFakeProber(map[string]float64{"/assets/track.wav": 120})
	c := NewChain(context.Background(), prober, "/assets")

	src := c.FadeOut(c.Source("track.wav"), -10, 6.5)
	if err := c.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	fade := src.Effects[0].(model.FadeOut)
	if fade.Start != 110 {
		t.Errorf("Start = %v, want 110", fade.Start)
	}
	if fade.Duration != 6.5 {
		t.Errorf("Duration = %v, want 6.5", fade.Duration)
	}
	if got := fade.TrimEnd(); got != 116.5 {
		t.Errorf("TrimEnd() = %v, want 116.5", got)
	}
}

func TestChain_FadeOutToEnd(t *testing.T) {
	tests := []struct {
		name         string
		length       float64
		start        float64
		wantStart    float64
		wantDuration float64
	}{
		{"relative start", 120, -10, 110, 10},
		{"relative fractional", 95.5, -6.5, 89, 6.5},
		{"absolute start", 120, 40, 40, 80},
		{"absolute start fade to eof", 63.25, 60, 60, 3.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober := newFakeProber(map[string]float64{"/assets/a.wav": tt.length})
			c := NewChain(context.Background(), prober, "/assets")

			src := c.FadeOutToEnd(c.Source("a.wav"), tt.start)
			if err := c.Err(); err != nil {
				t.Fatalf("Err() = %v", err)
			}
			fade := src.Effects[0].(model.FadeOut)
			if fade.Start != tt.wantStart {
				t.Errorf("Start = %v, want %v", fade.Start, tt.wantStart)
			}
			if fade.Duration != tt.wantDuration {
				t.Errorf("Duration = %v, want %v", fade.Duration, tt.wantDuration)
			}
			// The fade ends exactly at end of file.
			if got := fade.TrimEnd(); got != tt.length {
				t.Errorf("TrimEnd() = %v, want file length %v", got, tt.length)
			}
		})
	}
}

func TestChain_StickyError(t *testing.T) {
	prober := newFakeProber(map[string]float64{})
	c := NewChain(context.Background(), prober, "/assets")

	src := c.FadeOutToEnd(c.Source("missing.wav"), -5)
	if c.Err() == nil {
		t.Fatal("Err() = nil, want probe failure")
	}
	if len(src.Effects) != 0 {
		t.Errorf("failed call returned %d effects, want passthrough", len(src.Effects))
	}

	// Later calls are no-ops and do not replace the first error.
	first := c.Err()
	after := c.FadeIn(c.Source("other.wav"), -1)
	if len(after.Effects) != 0 {
		t.Error("call after failure still built an effect")
	}
	if !errors.Is(c.Err(), first) {
		t.Errorf("Err() = %v, want first error %v", c.Err(), first)
	}
}

func TestChain_FadeOut_NegativeResolution(t *testing.T) {
	prober := newFakeProber(map[string]float64{"/assets/short.wav": 3})
	c := NewChain(context.Background(), prober, "/assets")

	c.FadeOut(c.Source("short.wav"), -10, 5)
	if c.Err() == nil {
		t.Error("Err() = nil, want error for start before beginning of file")
	}
}

func TestChain_Volume(t *testing.T) {
	c := NewChain(context.Background(), newFakeProber(nil), "/assets")

	src := c.Volume(c.Source("intro.wav"), "0.7")
	if err := c.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	vol := src.Effects[0].(model.Volume)
	if vol.Value != "0.7" {
		t.Errorf("Value = %q, want %q", vol.Value, "0.7")
	}

	// Gain expressions pass through verbatim.
	src = c.Volume(c.Source("intro.wav"), "-3dB")
	if got := src.Effects[0].(model.Volume).Value; got != "-3dB" {
		t.Errorf("Value = %q, want %q", got, "-3dB")
	}
}

func TestChain_MemoizedProbing(t *testing.T) {
	prober := newFakeProber(map[string]float64{"/assets/loop.wav": 100})
	c := NewChain(context.Background(), prober, "/assets")

	// Memoization lives in the prober, not the chain; the fake counts raw
	// lookups, so this documents how often the chain asks.
	c.FadeOutToEnd(c.Source("loop.wav"), -5)
	c.FadeOutToEnd(c.Source("loop.wav"), -8)
	if err := c.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if prober.calls["/assets/loop.wav"] != 2 {
		t.Errorf("lookups = %d, want one per fade resolution", prober.calls["/assets/loop.wav"])
	}
}

func TestSourceSeconds(t *testing.T) {
	prober := newFakeProber(map[string]float64{"/assets/a.wav": 120})
	ctx := context.Background()
	c := NewChain(ctx, prober, "/assets")

	tests := []struct {
		name string
		src  model.Source
		want float64
	}{
		{"bare source", c.Source("a.wav"), 120},
		{"fade out trims", c.FadeOut(c.Source("a.wav"), -10, 6.5), 116.5},
		{"fade in keeps length", c.FadeIn(c.Source("a.wav"), 2), 120},
	}
	if err := c.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SourceSeconds(ctx, prober, tt.src)
			if err != nil {
				t.Fatalf("SourceSeconds() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SourceSeconds() = %v, want %v", got, tt.want)
			}
		})
	}
}
