package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Track is the declarative recipe for one soundtrack track.
//
// A track is rendered by concatenating its parts in order, optionally
// followed by a trailing silence gap, and tagging the result. Tracks are
// declared as static configuration before a run and are read-only during it.
type Track struct {
	// Name is the track title, used for the TITLE tag and the output
	// filename.
	Name string

	// Artist is the per-track artist. Empty means the artist tag is
	// omitted entirely from the output.
	Artist string

	// LyricsFile is an optional path to a UTF-8 text file whose contents
	// are embedded verbatim as the LYRICS tag. Empty means no lyrics.
	LyricsFile string

	// Parts are the sources concatenated end-to-end, in order. Never empty.
	Parts []Source

	// Gap is trailing silence in seconds appended after the last part.
	// It is a single pad at the end of the whole chain, not inter-part
	// padding. Zero means no gap. Never negative.
	Gap float64
}

// FileNameTemplate describes how output filenames are computed: the
// {placeholder} format string, the file extension (including the dot) and
// the album-level values some placeholders draw from.
type FileNameTemplate struct {
	// Format is the filename template, e.g. "{tracknum} - {title}".
	Format string

	// Ext is appended as-is after expansion and sanitization.
	Ext string

	// Album expands {album}.
	Album string

	// Year expands {year}.
	Year string
}

// FileName computes the output filename for this track.
//
// The template supports the placeholders {tracknum} (2-digit zero-padded),
// {title}, {artist}, {album} and {year}. Invalid filename characters are
// replaced with underscores.
//
// Example:
//
//	t := model.Track{Name: "Ark", Artist: "Cosmograph"}
//	t.FileName(3, model.FileNameTemplate{Format: "{tracknum} - {title}", Ext: ".flac"})
//	// "03 - Ark.flac"
func (t Track) FileName(number int, tmpl FileNameTemplate) string {
	name := tmpl.Format
	name = strings.ReplaceAll(name, "{year}", tmpl.Year)
	name = strings.ReplaceAll(name, "{album}", tmpl.Album)
	name = strings.ReplaceAll(name, "{artist}", t.Artist)
	name = strings.ReplaceAll(name, "{title}", t.Name)
	name = strings.ReplaceAll(name, "{tracknum}", fmt.Sprintf("%02d", number))
	return sanitizeFileName(name) + tmpl.Ext
}

// Album is an ordered sequence of tracks. A track's number is its 1-based
// position in Tracks.
type Album struct {
	// Title is the album title, used for playlist generation.
	Title string

	// Artist is the album-level artist. Informational; the renderer only
	// tags per-track artists.
	Artist string

	// Year is written as the DATE tag on every track.
	Year string

	// Tracks in album order.
	Tracks []Track
}

// sanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
func sanitizeFileName(name string) string {
	// Replace invalid path/file characters
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
