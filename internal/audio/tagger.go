package audio

import (
	"fmt"

	"github.com/bogem/id3v2"
)

// TagMeta holds the tag values written to a rendered mp3 track.
type TagMeta struct {
	Artist      string
	Album       string
	Title       string
	TrackNumber int
	Year        string
	Lyrics      string
}

// Tagger writes ID3v2 tags to rendered mp3 files.
//
// FLAC output is tagged entirely by the renderer; mp3 output gets a second
// tagging pass through this type because the renderer's handling of ID3
// lyrics and picture frames is unreliable across versions.
//
// Example:
//
//	tagger := audio.NewTagger()
//	err := tagger.SaveTags("/out/03 - Ark.mp3", meta, artworkBytes)
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// SaveTags writes ID3 tags to the mp3 file at path.
//
// Empty string fields are skipped rather than written as empty frames.
// Artwork, when non-nil, is embedded as a front-cover attached picture
// (JPEG bytes expected).
func (t *Tagger) SaveTags(path string, meta TagMeta, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tags: %w", err)
	}
	defer tag.Close()

	if meta.Artist != "" {
		tag.SetArtist(meta.Artist)
	}
	if meta.Album != "" {
		tag.SetAlbum(meta.Album)
	}
	if meta.Title != "" {
		tag.SetTitle(meta.Title)
	}
	if meta.TrackNumber > 0 {
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, fmt.Sprintf("%d", meta.TrackNumber))
	}
	if meta.Year != "" {
		tag.SetYear(meta.Year)
	}
	if meta.Lyrics != "" {
		tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
			Encoding:          id3v2.EncodingUTF8,
			Language:          "eng",
			ContentDescriptor: "",
			Lyrics:            meta.Lyrics,
		})
	}

	if artwork != nil {
		// Replace any existing cover picture with the processed one.
		tag.DeleteFrames(tag.CommonID("Attached picture"))
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     artwork,
		})
	}

	return tag.Save()
}
