package model

// Effect is a single audio transformation applied to a source before it is
// fed into a track's concatenation stage.
//
// Effects are applied in the order they appear in a Source's effect list:
// each effect consumes the previous effect's output, and the first effect
// consumes the raw file. The concrete variants are FadeIn, FadeOut and
// Volume.
type Effect interface {
	isEffect()
}

// FadeIn fades the source in from silence, starting at the beginning of the
// file.
type FadeIn struct {
	// Duration is the fade length in seconds. Always non-negative.
	Duration float64
}

// FadeOut fades the source out and trims everything after the fade.
//
// Start and Duration are absolute, non-negative offsets into the source.
// Relative offsets ("seconds before end of file") are resolved to absolute
// ones when the effect is constructed, never at render time; see the fx
// package.
//
// A fade out implies a trim: anything after Start+Duration is silence or
// looped garbage and is discarded. The trim is part of this effect and is
// rendered as a second chained filter stage immediately after the fade.
type FadeOut struct {
	// Start is the absolute offset in seconds where the fade begins.
	Start float64

	// Duration is the fade length in seconds.
	Duration float64
}

// TrimEnd returns the end of the implied trim: the source is cut to
// [0, TrimEnd] after the fade is applied.
func (f FadeOut) TrimEnd() float64 {
	return f.Start + f.Duration
}

// Volume scales the source's gain.
type Volume struct {
	// Value is passed through to the renderer verbatim. It can be a linear
	// multiplier ("0.7") or any gain expression the renderer understands,
	// such as a decibel adjustment ("-3dB").
	Value string
}

func (FadeIn) isEffect()  {}
func (FadeOut) isEffect() {}
func (Volume) isEffect()  {}

// Source describes one audio input of a track: a terminal file path plus an
// ordered chain of effects to apply before use.
//
// A Source with no effects is just a bare path. Sources are constructed once
// (by the fx package or as bare paths) and treated as immutable afterwards;
// With returns a new Source rather than mutating the receiver.
//
// Example:
//
//	src := model.NewSource("/assets/loop.wav")
//	src = src.With(model.FadeOut{Start: 110, Duration: 6.5})
//	// src.Effects is [FadeOut{110, 6.5}], src.Path is unchanged
type Source struct {
	// Path is the terminal path: the raw audio file at the root of the
	// effect chain.
	Path string

	// Effects are applied in order. May be empty.
	Effects []Effect
}

// NewSource returns a bare Source for the given file path.
func NewSource(path string) Source {
	return Source{Path: path}
}

// With returns a copy of the source with one more effect appended to the
// chain. The receiver is not modified.
func (s Source) With(effect Effect) Source {
	effects := make([]Effect, 0, len(s.Effects)+1)
	effects = append(effects, s.Effects...)
	effects = append(effects, effect)
	return Source{Path: s.Path, Effects: effects}
}
