package audio

import (
	"fmt"
	"strings"
)

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for duration/title info.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	// INI-style format with file, title, and length info.
	FormatPLS
)

// Extension returns the file extension for the playlist format, including
// the dot.
func (pf PlaylistFormat) Extension() string {
	switch pf {
	case FormatPLS:
		return ".pls"
	default:
		return ".m3u"
	}
}

// Entry is one playlist line: a rendered track file and its display
// metadata. Seconds is the planned track length (trimmed part lengths plus
// the trailing gap), so playlists can be generated without reading the
// rendered files back.
type Entry struct {
	FileName string
	Title    string
	Artist   string
	Seconds  float64
}

// PlaylistCreator generates album playlist files.
//
// Track paths in the playlist are relative (just the filename), assuming the
// playlist file sits in the output directory next to the tracks.
//
// Example:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true)
//	content := creator.Create("Chrono Ark Unofficial Soundtrack", entries)
//	os.WriteFile(playlistPath, []byte(content), 0644)
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines with duration/title
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// For FormatM3U, extended selects the #EXTM3U/#EXTINF variant; it is ignored
// for other formats.
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// Create generates playlist content for an album, ready to be written to a
// file.
func (p *PlaylistCreator) Create(albumTitle string, entries []Entry) string {
	switch p.format {
	case FormatPLS:
		return p.createPLS(entries)
	default:
		return p.createM3U(entries)
	}
}

// createM3U generates an M3U playlist.
//
// Standard M3U format:
//
//	filename1.flac
//	filename2.flac
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:180,Artist - Title
//	filename1.flac
func (p *PlaylistCreator) createM3U(entries []Entry) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, entry := range entries {
		if p.extended {
			label := entry.Title
			if entry.Artist != "" {
				label = entry.Artist + " - " + entry.Title
			}
			sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s\n", int(entry.Seconds), label))
		}
		sb.WriteString(entry.FileName + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
// PLS format is an INI-style text file:
//
//	[playlist]
//	File1=filename1.flac
//	Title1=Track Title
//	Length1=180
//	NumberOfEntries=2
//	Version=2
func (p *PlaylistCreator) createPLS(entries []Entry) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, entry := range entries {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, entry.FileName))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, entry.Title))
		sb.WriteString(fmt.Sprintf("Length%d=%d\n", idx, int(entry.Seconds)))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(entries)))
	sb.WriteString("Version=2\n")

	return sb.String()
}
