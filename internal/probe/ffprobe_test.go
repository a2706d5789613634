package probe

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFFProbe_Duration(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    float64
		wantErr bool
	}{
		{"plain number", "120.0\n", 120.0, false},
		{"fractional", "116.502041\n", 116.502041, false},
		{"no trailing newline", "42.5", 42.5, false},
		{"garbage", "N/A\n", 0, true},
		{"empty output", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewFFProbe("")
			p.run = func(ctx context.Context, binary, path string) ([]byte, error) {
				return []byte(tt.output), nil
			}

			got, err := p.Duration(context.Background(), "track.wav")
			if tt.wantErr {
				if err == nil {
					t.Fatal("Duration() error = nil, want error")
				}
				var perr *Error
				if !errors.As(err, &perr) {
					t.Errorf("Duration() error = %T, want *probe.Error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Duration() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFFProbe_Memoizes(t *testing.T) {
	calls := 0
	p := NewFFProbe("ffprobe")
	p.run = func(ctx context.Context, binary, path string) ([]byte, error) {
		calls++
		return []byte("90.25\n"), nil
	}

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		got, err := p.Duration(ctx, "loop.wav")
		if err != nil {
			t.Fatalf("Duration() error = %v", err)
		}
		if got != 90.25 {
			t.Fatalf("Duration() = %v, want 90.25", got)
		}
	}
	if calls != 1 {
		t.Errorf("probing tool invoked %d times, want 1", calls)
	}

	// A different path is a separate cache entry.
	if _, err := p.Duration(ctx, "other.wav"); err != nil {
		t.Fatalf("Duration() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("probing tool invoked %d times after second path, want 2", calls)
	}
}

func TestFFProbe_ErrorNotCached(t *testing.T) {
	calls := 0
	p := NewFFProbe("ffprobe")
	p.run = func(ctx context.Context, binary, path string) ([]byte, error) {
		calls++
		if calls == 1 {
			return nil, fmt.Errorf("tool missing")
		}
		return []byte("10\n"), nil
	}

	ctx := context.Background()
	if _, err := p.Duration(ctx, "track.wav"); err == nil {
		t.Fatal("Duration() error = nil, want error")
	}
	got, err := p.Duration(ctx, "track.wav")
	if err != nil {
		t.Fatalf("Duration() retry error = %v", err)
	}
	if got != 10 {
		t.Errorf("Duration() = %v, want 10", got)
	}
}

func TestFFProbe_ConcurrentLookupsShareInvocation(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	p := NewFFProbe("ffprobe")
	p.run = func(ctx context.Context, binary, path string) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []byte("45.5\n"), nil
	}

	ctx := context.Background()
	const lookups = 4
	results := make(chan float64, lookups)

	var wg sync.WaitGroup
	for i := 0; i < lookups; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.Duration(ctx, "loop.wav")
			if err != nil {
				t.Errorf("Duration() error = %v", err)
			}
			results <- got
		}()
	}

	// Let the other lookups queue up behind the in-flight probe, then let
	// it finish.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	for got := range results {
		if got != 45.5 {
			t.Errorf("Duration() = %v, want 45.5", got)
		}
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("probing tool invoked %d times, want 1", got)
	}
}

func TestNewFFProbe_DefaultBinary(t *testing.T) {
	p := NewFFProbe("  ")
	if p.binary != "ffprobe" {
		t.Errorf("binary = %q, want %q", p.binary, "ffprobe")
	}
}
