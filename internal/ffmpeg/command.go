package ffmpeg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvess/albumforge/internal/model"
)

// Metadata holds the tag values written into a rendered track.
type Metadata struct {
	// Date is the release year tag.
	Date string

	// Title is the track title tag.
	Title string

	// TrackNumber is the 1-based track number tag.
	TrackNumber int

	// Artist is the per-track artist. Empty omits the tag entirely; no
	// empty-string tag is emitted.
	Artist string

	// Lyrics is embedded verbatim when non-empty.
	Lyrics string
}

// Command assembles one ffmpeg invocation for a single track: the input file
// list, the per-input filter-graph stages, the concatenation stage and the
// output metadata.
//
// Stream labels follow a fixed scheme: raw inputs are [0], [1], ...,
// intermediate filter outputs are [f1], [f2], ... numbered across the whole
// graph, the synthesized gap is [silence] and the concatenation output is
// [out].
//
// A Command is built fresh for every track and discarded after the
// invocation:
//
//	cmd := ffmpeg.NewCommand()
//	for _, part := range track.Parts {
//	    cmd.AddPart(part)
//	}
//	if track.Gap > 0 {
//	    cmd.AddSilence(track.Gap, 48000)
//	}
//	args := cmd.Args(meta, "/out/03 - Ark.flac")
type Command struct {
	inputs     []string
	stages     []string
	components []string
	filterID   int
}

// NewCommand creates an empty Command.
func NewCommand() *Command {
	return &Command{}
}

// AddPart registers one source as the next numbered input stream.
//
// The same physical file may be added more than once; each AddPart gets its
// own input stream. A part with effects contributes one filter stage per
// effect expression, threading fresh intermediate labels so the chain's
// final stream feeds concatenation; an effect-free part feeds concatenation
// directly.
func (c *Command) AddPart(src model.Source) {
	index := len(c.inputs)
	c.inputs = append(c.inputs, src.Path)

	stream := fmt.Sprintf("[%d]", index)
	for _, effect := range src.Effects {
		for _, expr := range effectExprs(effect) {
			c.filterID++
			next := fmt.Sprintf("[f%d]", c.filterID)
			c.stages = append(c.stages, fmt.Sprintf("%s %s %s", stream, expr, next))
			stream = next
		}
	}
	c.components = append(c.components, stream)
}

// AddSilence synthesizes a silent stream of the given length and appends it
// as one more concatenation input after everything added so far. Call it at
// most once, after the last part; the gap is a single trailing pad, never
// inter-part padding.
func (c *Command) AddSilence(seconds float64, sampleRate int) {
	c.stages = append(c.stages, fmt.Sprintf("anullsrc=r=%d:duration=%s [silence]", sampleRate, formatSeconds(seconds)))
	c.components = append(c.components, "[silence]")
}

// Args returns the complete argument list for the renderer: quiet mode,
// input pairs, the assembled filter graph with its concatenation stage, the
// output stream mapping, metadata tags and the destination path.
func (c *Command) Args(meta Metadata, outputPath string) []string {
	args := []string{"-v", "quiet"}
	for _, input := range c.inputs {
		args = append(args, "-i", input)
	}

	concat := fmt.Sprintf("%s concat=n=%d:v=0:a=1 [out]",
		strings.Join(c.components, ""), len(c.components))
	graph := strings.Join(append(append([]string{}, c.stages...), concat), "; ")

	args = append(args,
		"-filter_complex", graph,
		"-map", "[out]",
		"-metadata", "DATE="+meta.Date,
		"-metadata", "TITLE="+meta.Title,
		"-metadata", fmt.Sprintf("TRACKNUMBER=%d", meta.TrackNumber),
	)
	if meta.Artist != "" {
		args = append(args, "-metadata", "ARTIST="+meta.Artist)
	}
	if meta.Lyrics != "" {
		args = append(args, "-metadata", "LYRICS="+meta.Lyrics)
	}
	return append(args, outputPath)
}

// effectExprs renders one effect as its filter expressions. A fade out
// expands to two chained stages: the fade itself and the trim that discards
// everything after it.
func effectExprs(effect model.Effect) []string {
	switch e := effect.(type) {
	case model.FadeIn:
		return []string{fmt.Sprintf("afade=type=in:start_time=0:duration=%s", formatSeconds(e.Duration))}
	case model.FadeOut:
		return []string{
			fmt.Sprintf("afade=type=out:start_time=%s:duration=%s", formatSeconds(e.Start), formatSeconds(e.Duration)),
			fmt.Sprintf("atrim=start=0:end=%s", formatSeconds(e.TrimEnd())),
		}
	case model.Volume:
		return []string{"volume=" + e.Value}
	default:
		return nil
	}
}

// formatSeconds prints a seconds value in minimal decimal form ("110",
// "6.5", "116.502041").
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
