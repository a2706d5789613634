package fx

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/corvess/albumforge/internal/model"
	"github.com/corvess/albumforge/internal/probe"
)

// Chain builds effect-wrapped sources for an album plan.
//
// A Chain resolves relative asset names against a root directory and
// resolves relative fade offsets ("seconds before end of file") into
// absolute ones using a duration prober, at plan-construction time. Probing
// eagerly means each distinct file is measured once per run no matter how
// many tracks reference it, and a missing file surfaces before any rendering
// work begins.
//
// Chain carries a sticky error: the first failure is recorded and every later
// call becomes a no-op, so a long declarative track table stays free of
// per-call error handling. Check Err once after the table is built:
//
//	c := fx.NewChain(ctx, prober, assetsDir)
//	parts := []model.Source{
//	    c.Source("bangjoo_intro.wav"),
//	    c.FadeOut(c.Source("bangjoo_loop.wav"), 40, 6.5),
//	}
//	if err := c.Err(); err != nil {
//	    return err
//	}
//
// A Chain is scoped to a single plan construction and must not be retained
// afterwards; it holds the construction context.
type Chain struct {
	ctx    context.Context
	prober probe.Prober
	root   string
	err    error
}

// NewChain creates a Chain that resolves asset names against root and fade
// offsets through prober. The context covers the whole plan construction.
func NewChain(ctx context.Context, prober probe.Prober, root string) *Chain {
	return &Chain{ctx: ctx, prober: prober, root: root}
}

// Err returns the first error recorded by any builder call, or nil.
func (c *Chain) Err() error {
	return c.err
}

// Source returns a bare descriptor for the named asset. Relative names are
// resolved against the chain's root directory.
func (c *Chain) Source(name string) model.Source {
	return model.NewSource(c.resolve(name))
}

// FadeIn appends a fade-in of the given duration to the source.
func (c *Chain) FadeIn(src model.Source, duration float64) model.Source {
	if c.err != nil {
		return src
	}
	if duration < 0 {
		c.fail(fmt.Errorf("fade in on %s: negative duration %v", src.Path, duration))
		return src
	}
	return src.With(model.FadeIn{Duration: duration})
}

// FadeOut appends a fade-out of the given duration to the source, plus the
// implied trim to the end of the fade.
//
// A negative start means "this many seconds before end of file" and is
// resolved to an absolute offset by probing the source's terminal path.
func (c *Chain) FadeOut(src model.Source, start, duration float64) model.Source {
	if c.err != nil {
		return src
	}
	if duration < 0 {
		c.fail(fmt.Errorf("fade out on %s: negative duration %v", src.Path, duration))
		return src
	}
	if start < 0 {
		eof, err := c.prober.Duration(c.ctx, src.Path)
		if err != nil {
			c.fail(err)
			return src
		}
		start = eof + start
	}
	if start < 0 {
		c.fail(fmt.Errorf("fade out on %s: start offset before beginning of file", src.Path))
		return src
	}
	return src.With(model.FadeOut{Start: start, Duration: duration})
}

// FadeOutToEnd appends a fade-out spanning from start to the end of the
// file.
//
// A negative start means "this many seconds before end of file"; the fade
// then lasts exactly those final seconds, ending at end of file. A
// non-negative start fades over the remainder of the file. Either way the
// terminal path is probed once (memoized) to locate the end.
func (c *Chain) FadeOutToEnd(src model.Source, start float64) model.Source {
	if c.err != nil {
		return src
	}
	eof, err := c.prober.Duration(c.ctx, src.Path)
	if err != nil {
		c.fail(err)
		return src
	}

	var duration float64
	if start < 0 {
		duration = -start
		start = eof + start
	} else {
		duration = eof - start
	}
	if start < 0 || duration < 0 {
		c.fail(fmt.Errorf("fade out on %s: offset outside file (length %v)", src.Path, eof))
		return src
	}
	return src.With(model.FadeOut{Start: start, Duration: duration})
}

// Volume appends a gain adjustment to the source. The value is passed to the
// renderer verbatim: a linear multiplier such as "0.7" or a gain expression
// such as "-3dB".
func (c *Chain) Volume(src model.Source, value string) model.Source {
	if c.err != nil {
		return src
	}
	if value == "" {
		c.fail(fmt.Errorf("volume on %s: empty value", src.Path))
		return src
	}
	return src.With(model.Volume{Value: value})
}

func (c *Chain) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.root, name)
}

func (c *Chain) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// SourceSeconds returns the rendered length of a source in seconds: the
// probed file duration, shortened by any fade-out trims in chain order.
// Fade-ins and volume changes do not affect length.
func SourceSeconds(ctx context.Context, prober probe.Prober, src model.Source) (float64, error) {
	seconds, err := prober.Duration(ctx, src.Path)
	if err != nil {
		return 0, err
	}
	for _, effect := range src.Effects {
		if fade, ok := effect.(model.FadeOut); ok {
			seconds = fade.TrimEnd()
		}
	}
	return seconds, nil
}
