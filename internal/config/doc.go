// Package config provides configuration management for albumforge.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Validation of loaded settings
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// FLAC output named "{tracknum} - {title}.flac"
//	// ffmpeg/ffprobe resolved from PATH
//	// Asset preflight enabled
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Configuration Options
//
// Settings includes options for:
//   - Renderer and prober binary paths
//   - Output format (flac or mp3) and file naming
//   - Release year tagging and silence sample rate
//   - An alternative album plan file
//   - Playlist generation
//   - Cover art processing and embedding
//   - ID3 tag writing for mp3 output
package config
