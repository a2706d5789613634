package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/corvess/albumforge/internal/audio"
	"github.com/corvess/albumforge/internal/config"
	"github.com/corvess/albumforge/internal/ffmpeg"
	"github.com/corvess/albumforge/internal/fx"
	ioutils "github.com/corvess/albumforge/internal/io"
	"github.com/corvess/albumforge/internal/model"
	"github.com/corvess/albumforge/internal/plan"
	"github.com/corvess/albumforge/internal/probe"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a build progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// prober measures asset durations. Satisfied by *probe.FFProbe.
type prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// renderer runs one assembled track invocation. Satisfied by
// *ffmpeg.Renderer.
type renderer interface {
	Render(ctx context.Context, args []string) error
}

// Manager coordinates an album build: plan resolution, asset preflight and
// the sequential track rendering loop.
//
// A render failure is fatal; remaining tracks are not attempted. Tracks
// whose output file already exists are skipped, so an aborted run resumes
// where it left off.
type Manager struct {
	settings     *config.Settings
	prober       prober
	renderer     renderer
	tagger       *audio.Tagger
	playlist     *audio.PlaylistCreator
	imageService *ioutils.ImageService

	album     *model.Album
	assetsDir string
	dryRun    bool

	builtTracks int32
	totalTracks int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new build Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	var playlistFormat audio.PlaylistFormat
	switch settings.PlaylistFormat {
	case "pls":
		playlistFormat = audio.FormatPLS
	default:
		playlistFormat = audio.FormatM3U
	}

	return &Manager{
		settings:     settings,
		prober:       probe.NewFFProbe(settings.FFprobePath),
		renderer:     ffmpeg.NewRenderer(settings.FFmpegPath),
		tagger:       audio.NewTagger(),
		playlist:     audio.NewPlaylistCreator(playlistFormat, settings.M3UExtended),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}
}

// SetDryRun makes Run print each assembled renderer invocation instead of
// executing it. Output files are not created and not skipped.
func (m *Manager) SetDryRun(v bool) {
	m.dryRun = v
}

// Initialize resolves the album plan against the assets directory.
//
// All relative fade offsets are probed here, so Initialize fails on missing
// or unreadable assets referenced by relative fades. Plan selection follows
// the settings: a configured plan file, otherwise the built-in album.
func (m *Manager) Initialize(ctx context.Context, assetsDir string) error {
	assetsDir, err := filepath.Abs(assetsDir)
	if err != nil {
		return fmt.Errorf("resolve assets directory: %w", err)
	}
	if info, err := os.Stat(assetsDir); err != nil {
		return fmt.Errorf("assets directory: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("assets directory: %s is not a directory", assetsDir)
	}
	m.assetsDir = assetsDir

	chain := fx.NewChain(ctx, m.prober, assetsDir)

	var album *model.Album
	if m.settings.PlanFile != "" {
		album, err = plan.Load(m.settings.PlanFile, chain)
		if err != nil {
			return err
		}
	} else {
		album = plan.ChronoArk(chain)
		if err := chain.Err(); err != nil {
			return fmt.Errorf("resolve album plan: %w", err)
		}
	}

	m.album = album
	m.totalTracks = int32(len(album.Tracks))
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Planned album: %s (%d tracks)", album.Title, len(album.Tracks)),
		Level:   LevelInfo,
	})
	return nil
}

// Verify probes every asset the plan references, concurrently, bounded by
// the configured probe limit. It reports the first failure and is intended
// as a preflight before Run so a missing file at track 40 does not waste
// the first 39 renders.
func (m *Manager) Verify(ctx context.Context) error {
	if m.album == nil {
		return fmt.Errorf("not initialized")
	}

	// Lyrics files are plain text; they only need to exist.
	audioPaths := map[string]bool{}
	lyricsPaths := map[string]bool{}
	for _, track := range m.album.Tracks {
		for _, part := range track.Parts {
			audioPaths[part.Path] = true
		}
		if track.LyricsFile != "" {
			lyricsPaths[m.resolveAsset(track.LyricsFile)] = true
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentProbes)

	for path := range audioPaths {
		path := path
		g.Go(func() error {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("verify asset: %w", err)
			}
			if _, err := m.prober.Duration(ctx, path); err != nil {
				return fmt.Errorf("verify asset: %w", err)
			}
			return nil
		})
	}
	for path := range lyricsPaths {
		path := path
		g.Go(func() error {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("verify asset: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Verified %d assets", len(audioPaths)+len(lyricsPaths)),
		Level:   LevelVerbose,
	})
	return nil
}

// Run renders the whole album into outputDir, strictly in track order.
//
// Existing output files are skipped. The first render failure aborts the
// run. After a full pass, cover art and a playlist are written when
// configured.
func (m *Manager) Run(ctx context.Context, outputDir string) error {
	if m.album == nil {
		return fmt.Errorf("not initialized")
	}

	outputDir, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}
	if err := ioutils.EnsureDir(outputDir); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if m.settings.VerifyAssets && !m.dryRun {
		if err := m.Verify(ctx); err != nil {
			return err
		}
	}

	artwork, err := m.prepareCoverArt(ctx, outputDir)
	if err != nil {
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Error processing cover art: %v", err),
			Level:   LevelWarning,
		})
	}

	for i, track := range m.album.Tracks {
		if err := m.buildTrack(ctx, i+1, track, outputDir, artwork); err != nil {
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Error rendering %s: %v", track.Name, err),
				Level:   LevelError,
			})
			return err
		}
	}

	if m.settings.CreatePlaylist && !m.dryRun {
		if err := m.writePlaylist(ctx, outputDir); err != nil {
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Error creating playlist: %v", err),
				Level:   LevelWarning,
			})
		} else {
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Created playlist for %s", m.album.Title),
				Level:   LevelSuccess,
			})
		}
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Finished album: %s", m.album.Title),
		Level:   LevelSuccess,
	})
	return nil
}

// Progress returns the number of tracks handled so far (rendered or
// skipped) and the album's total.
func (m *Manager) Progress() (built, total int32) {
	return atomic.LoadInt32(&m.builtTracks), atomic.LoadInt32(&m.totalTracks)
}

// AlbumName returns a display label for the initialized album.
func (m *Manager) AlbumName() string {
	if m.album == nil {
		return ""
	}
	return fmt.Sprintf("%s (%d tracks)", m.album.Title, len(m.album.Tracks))
}

func (m *Manager) buildTrack(ctx context.Context, number int, track model.Track, outputDir string, artwork []byte) error {
	fileName := track.FileName(number, m.fileNameTemplate())
	outputPath := filepath.Join(outputDir, fileName)

	if !m.dryRun {
		if _, err := os.Stat(outputPath); err == nil {
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Skipping existing: %s", fileName),
				Level:   LevelVerbose,
			})
			atomic.AddInt32(&m.builtTracks, 1)
			return nil
		}
	}

	cmd := ffmpeg.NewCommand()
	for _, part := range track.Parts {
		cmd.AddPart(part)
	}
	if track.Gap > 0 {
		cmd.AddSilence(track.Gap, m.settings.SilenceSampleRate)
	}

	var lyrics string
	if track.LyricsFile != "" {
		var err error
		lyrics, err = ioutils.ReadTextFile(m.resolveAsset(track.LyricsFile))
		if err != nil {
			return fmt.Errorf("lyrics for %s: %w", track.Name, err)
		}
	}

	meta := ffmpeg.Metadata{
		Date:        m.albumYear(),
		Title:       track.Name,
		TrackNumber: number,
		Artist:      track.Artist,
		Lyrics:      lyrics,
	}
	args := cmd.Args(meta, outputPath)

	if m.dryRun {
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Would run: ffmpeg %s", strings.Join(args, " ")),
			Level:   LevelInfo,
		})
		atomic.AddInt32(&m.builtTracks, 1)
		return nil
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Rendering: %s", fileName),
		Level:   LevelInfo,
	})
	if err := m.renderer.Render(ctx, args); err != nil {
		return err
	}

	// The renderer only tags what flac carries natively; mp3 output gets
	// a second pass for ID3 lyrics and cover frames.
	if m.settings.OutputFormat == "mp3" && (m.settings.ModifyTags || (m.settings.EmbedCoverArtInTags && artwork != nil)) {
		tagMeta := audio.TagMeta{
			Artist:      track.Artist,
			Album:       m.album.Title,
			Title:       track.Name,
			TrackNumber: number,
			Year:        m.albumYear(),
			Lyrics:      lyrics,
		}
		if !m.settings.EmbedCoverArtInTags {
			artwork = nil
		}
		if err := m.tagger.SaveTags(outputPath, tagMeta, artwork); err != nil {
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Error tagging %s: %v", fileName, err),
				Level:   LevelWarning,
			})
		}
	}

	atomic.AddInt32(&m.builtTracks, 1)
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Rendered: %s", fileName),
		Level:   LevelVerbose,
	})
	return nil
}

// prepareCoverArt reads, processes and saves the configured cover art file,
// returning the processed bytes for tag embedding. No configured cover art
// is not an error.
func (m *Manager) prepareCoverArt(ctx context.Context, outputDir string) ([]byte, error) {
	if m.settings.CoverArtFile == "" || m.dryRun {
		return nil, nil
	}

	artwork, err := os.ReadFile(m.resolveAsset(m.settings.CoverArtFile))
	if err != nil {
		return nil, err
	}

	if m.settings.CoverArtResize {
		artwork, err = m.imageService.ResizeImage(ctx, artwork, m.settings.CoverArtMaxSize, m.settings.CoverArtMaxSize)
		if err != nil {
			return nil, err
		}
	} else if m.settings.ConvertCoverArtToJPG {
		artwork, err = m.imageService.ConvertToJPEG(ctx, artwork)
		if err != nil {
			return nil, err
		}
	}

	name := ioutils.SanitizeFileName(m.expandAlbumName(m.settings.CoverArtFileNameFormat)) + ".jpg"
	path := filepath.Join(outputDir, name)
	if err := os.WriteFile(path, artwork, 0644); err != nil {
		return nil, err
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Saved cover art: %s", name),
		Level:   LevelVerbose,
	})
	return artwork, nil
}

// writePlaylist generates the album playlist from planned track lengths.
// Lengths come from probed part durations and fade trims, not from reading
// rendered files back.
func (m *Manager) writePlaylist(ctx context.Context, outputDir string) error {
	var entries []audio.Entry
	for i, track := range m.album.Tracks {
		seconds := track.Gap
		for _, part := range track.Parts {
			partSeconds, err := fx.SourceSeconds(ctx, m.prober, part)
			if err != nil {
				return fmt.Errorf("playlist length for %s: %w", track.Name, err)
			}
			seconds += partSeconds
		}
		entries = append(entries, audio.Entry{
			FileName: track.FileName(i+1, m.fileNameTemplate()),
			Title:    track.Name,
			Artist:   track.Artist,
			Seconds:  seconds,
		})
	}

	content := m.playlist.Create(m.album.Title, entries)
	name := ioutils.SanitizeFileName(m.expandAlbumName(m.settings.PlaylistFileNameFormat)) + m.playlistExtension()
	return os.WriteFile(filepath.Join(outputDir, name), []byte(content), 0644)
}

func (m *Manager) playlistExtension() string {
	if m.settings.PlaylistFormat == "pls" {
		return audio.FormatPLS.Extension()
	}
	return audio.FormatM3U.Extension()
}

func (m *Manager) fileNameTemplate() model.FileNameTemplate {
	return model.FileNameTemplate{
		Format: m.settings.FileNameFormat,
		Ext:    m.settings.Extension(),
		Album:  m.album.Title,
		Year:   m.albumYear(),
	}
}

func (m *Manager) expandAlbumName(format string) string {
	return strings.ReplaceAll(format, "{album}", m.album.Title)
}

func (m *Manager) albumYear() string {
	if m.album.Year != "" {
		return m.album.Year
	}
	return m.settings.ReleaseYear
}

// resolveAsset resolves a plan-declared path against the assets directory.
func (m *Manager) resolveAsset(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.assetsDir, path)
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
