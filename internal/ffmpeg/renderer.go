package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// InvocationError reports a renderer invocation that exited non-zero or
// failed to start. It is fatal to the run; there is no retry and no cleanup
// of partial output.
type InvocationError struct {
	// Binary is the renderer executable that was invoked.
	Binary string

	// Stderr is whatever the tool printed to its error stream, trimmed.
	Stderr string

	// Err is the underlying exec error.
	Err error
}

func (e *InvocationError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Binary, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Binary, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Renderer runs the external media renderer (ffmpeg) synchronously.
type Renderer struct {
	binary string
}

// NewRenderer creates a Renderer using the given binary name or path.
// An empty binary defaults to "ffmpeg" resolved from PATH.
func NewRenderer(binary string) *Renderer {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Renderer{binary: binary}
}

// Render invokes the renderer with the assembled arguments and waits for it
// to finish. A non-zero exit returns an *InvocationError.
func (r *Renderer) Render(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, r.binary, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &InvocationError{
			Binary: r.binary,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return nil
}
