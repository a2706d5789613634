package probe

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Prober reports the duration of an audio file in seconds.
//
// Implementations must be safe for concurrent use; the asset preflight
// probes several files at once.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// Error reports a failed duration probe: the probing tool is missing, the
// file does not exist, or the tool's output was not a number.
type Error struct {
	// Path is the file that was being probed.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("probe %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FFProbe measures container durations by invoking ffprobe.
//
// Results are memoized per path for the lifetime of the prober, so repeated
// lookups of the same file (fade resolution can ask for the same loop many
// times across different tracks) invoke the tool at most once. Concurrent
// first lookups of the same path share a single invocation.
//
// Example:
//
//	prober := probe.NewFFProbe("ffprobe")
//	seconds, err := prober.Duration(ctx, "/assets/boss_loop.wav")
type FFProbe struct {
	binary string

	// run executes the probing tool and returns its stdout. Replaced in
	// tests to avoid spawning subprocesses.
	run func(ctx context.Context, binary, path string) ([]byte, error)

	group singleflight.Group

	mu    sync.Mutex
	cache map[string]float64
}

// NewFFProbe creates an FFProbe using the given binary name or path.
// An empty binary defaults to "ffprobe" resolved from PATH.
func NewFFProbe(binary string) *FFProbe {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	return &FFProbe{
		binary: binary,
		run:    runFFProbe,
		cache:  make(map[string]float64),
	}
}

// Duration returns the container-level duration of path in seconds.
//
// The first lookup of a path invokes ffprobe configured to emit exactly the
// duration with diagnostics suppressed; subsequent lookups return the cached
// value, and concurrent first lookups collapse onto one invocation. Errors
// are returned as *Error and are not cached.
func (p *FFProbe) Duration(ctx context.Context, path string) (float64, error) {
	p.mu.Lock()
	if seconds, ok := p.cache[path]; ok {
		p.mu.Unlock()
		return seconds, nil
	}
	p.mu.Unlock()

	result, err, _ := p.group.Do(path, func() (any, error) {
		output, err := p.run(ctx, p.binary, path)
		if err != nil {
			return nil, err
		}

		seconds, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
		if err != nil {
			return nil, fmt.Errorf("unparseable duration %q", strings.TrimSpace(string(output)))
		}

		p.mu.Lock()
		p.cache[path] = seconds
		p.mu.Unlock()
		return seconds, nil
	})
	if err != nil {
		return 0, &Error{Path: path, Err: err}
	}
	return result.(float64), nil
}

// runFFProbe asks ffprobe for the container duration alone, in plain CSV
// form with no headers, so stdout is a single number.
func runFFProbe(ctx context.Context, binary, path string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary,
		"-i", path,
		"-show_entries", "format=duration",
		"-v", "quiet",
		"-of", "csv=p=0",
	)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return output, nil
}
