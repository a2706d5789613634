package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Tool paths
	FFmpegPath  string `json:"ffmpeg_path"`
	FFprobePath string `json:"ffprobe_path"`

	// Output settings
	OutputFormat   string `json:"output_format"` // flac, mp3
	FileNameFormat string `json:"file_name_format"`
	ReleaseYear    string `json:"release_year"`

	// Render settings
	SilenceSampleRate int    `json:"silence_sample_rate"`
	PlanFile          string `json:"plan_file"`

	// Preflight settings
	VerifyAssets        bool `json:"verify_assets"`
	MaxConcurrentProbes int  `json:"max_concurrent_probes"`

	// Playlist settings
	CreatePlaylist         bool   `json:"create_playlist"`
	PlaylistFormat         string `json:"playlist_format"` // m3u, pls
	PlaylistFileNameFormat string `json:"playlist_file_name_format"`
	M3UExtended            bool   `json:"m3u_extended"`

	// Cover art settings
	CoverArtFile           string `json:"cover_art_file"`
	CoverArtFileNameFormat string `json:"cover_art_file_name_format"`
	CoverArtResize         bool   `json:"cover_art_resize"`
	CoverArtMaxSize        int    `json:"cover_art_max_size"`
	ConvertCoverArtToJPG   bool   `json:"convert_cover_art_to_jpg"`
	EmbedCoverArtInTags    bool   `json:"embed_cover_art_in_tags"` // mp3 output only

	// Tag settings (mp3 output only; flac is tagged by the renderer)
	ModifyTags bool `json:"modify_tags"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",

		OutputFormat:   "flac",
		FileNameFormat: "{tracknum} - {title}",
		ReleaseYear:    "2024",

		SilenceSampleRate: 48000,

		VerifyAssets:        true,
		MaxConcurrentProbes: 4,

		CreatePlaylist:         false,
		PlaylistFormat:         "m3u",
		PlaylistFileNameFormat: "{album}",
		M3UExtended:            true,

		CoverArtFileNameFormat: "cover",
		CoverArtResize:         true,
		CoverArtMaxSize:        1000,
		ConvertCoverArtToJPG:   true,
		EmbedCoverArtInTags:    true,

		ModifyTags: true,
	}
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings no run could honor.
func (s *Settings) Validate() error {
	switch s.OutputFormat {
	case "flac", "mp3":
	default:
		return fmt.Errorf("unsupported output_format %q", s.OutputFormat)
	}
	switch s.PlaylistFormat {
	case "m3u", "pls":
	default:
		return fmt.Errorf("unsupported playlist_format %q", s.PlaylistFormat)
	}
	if s.SilenceSampleRate <= 0 {
		return fmt.Errorf("silence_sample_rate must be positive, got %d", s.SilenceSampleRate)
	}
	if s.MaxConcurrentProbes <= 0 {
		return fmt.Errorf("max_concurrent_probes must be positive, got %d", s.MaxConcurrentProbes)
	}
	return nil
}

// Extension returns the output file extension for the configured format,
// including the dot.
func (s *Settings) Extension() string {
	switch s.OutputFormat {
	case "mp3":
		return ".mp3"
	default:
		return ".flac"
	}
}
