// Package audio provides post-render audio file services: ID3 tag writing
// for mp3 output and album playlist generation.
//
// # ID3 Tagging
//
// Use the Tagger to write ID3v2 tags to rendered mp3 files:
//
//	tagger := audio.NewTagger()
//	err := tagger.SaveTags(trackPath, meta, artworkBytes)
//
// The tagger supports artist, album, title, track number, year, lyrics
// (USLT) and cover art (APIC). FLAC output never goes through the tagger;
// the renderer writes its tags directly.
//
// # Playlist Generation
//
// Generate playlists from planned track metadata:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.Create(album.Title, entries)
//	os.WriteFile(playlistPath, []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
package audio
