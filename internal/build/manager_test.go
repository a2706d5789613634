package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/corvess/albumforge/internal/config"
)

type fakeProber struct {
	durations map[string]float64
}

func (p *fakeProber) Duration(_ context.Context, path string) (float64, error) {
	d, ok := p.durations[filepath.Base(path)]
	if !ok {
		return 0, fmt.Errorf("no such asset: %s", path)
	}
	return d, nil
}

// fakeRenderer records invocations and creates the output file on success,
// like the real renderer does.
type fakeRenderer struct {
	invocations [][]string
	failOn      string // substring of the output path
}

func (r *fakeRenderer) Render(_ context.Context, args []string) error {
	r.invocations = append(r.invocations, args)
	outputPath := args[len(args)-1]
	if r.failOn != "" && strings.Contains(outputPath, r.failOn) {
		return errors.New("renderer exploded")
	}
	return os.WriteFile(outputPath, []byte("audio"), 0o644)
}

func (r *fakeRenderer) outputs() []string {
	var paths []string
	for _, args := range r.invocations {
		paths = append(paths, filepath.Base(args[len(args)-1]))
	}
	return paths
}

const testPlan = `{
	"title": "Test Album",
	"year": "2024",
	"tracks": [
		{
			"name": "One",
			"parts": [{"file": "a.wav"}],
			"gap": 1
		},
		{
			"name": "Two",
			"artist": "Someone",
			"parts": [
				{"file": "b.wav", "effects": [{"type": "fade_out", "start": -5, "duration": 2}]}
			]
		}
	]
}`

func newTestManager(t *testing.T) (*Manager, *fakeRenderer, string) {
	t.Helper()

	assetsDir := t.TempDir()
	outputDir := t.TempDir()
	for _, name := range []string{"a.wav", "b.wav"} {
		if err := os.WriteFile(filepath.Join(assetsDir, name), []byte("wav"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	planPath := filepath.Join(assetsDir, "plan.json")
	if err := os.WriteFile(planPath, []byte(testPlan), 0o644); err != nil {
		t.Fatal(err)
	}

	settings := config.DefaultSettings()
	settings.PlanFile = planPath

	manager := NewManager(settings, nil)
	manager.prober = &fakeProber{durations: map[string]float64{"a.wav": 60, "b.wav": 30}}
	renderer := &fakeRenderer{}
	manager.renderer = renderer

	if err := manager.Initialize(context.Background(), assetsDir); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return manager, renderer, outputDir
}

func TestRunRendersInOrder(t *testing.T) {
	manager, renderer, outputDir := newTestManager(t)

	if err := manager.Run(context.Background(), outputDir); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := renderer.outputs()
	want := []string{"01 - One.flac", "02 - Two.flac"}
	if len(got) != len(want) {
		t.Fatalf("rendered %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("render %d = %q, want %q", i, got[i], want[i])
		}
	}

	built, total := manager.Progress()
	if built != 2 || total != 2 {
		t.Errorf("Progress() = %d/%d, want 2/2", built, total)
	}

	// Track one carries a trailing gap, track two does not.
	firstArgs := strings.Join(renderer.invocations[0], " ")
	if !strings.Contains(firstArgs, "anullsrc") {
		t.Errorf("first invocation has no silence stage: %s", firstArgs)
	}
	secondArgs := strings.Join(renderer.invocations[1], " ")
	if strings.Contains(secondArgs, "anullsrc") {
		t.Errorf("second invocation has an unexpected silence stage: %s", secondArgs)
	}
}

func TestRunSkipsExisting(t *testing.T) {
	manager, renderer, outputDir := newTestManager(t)

	existing := filepath.Join(outputDir, "01 - One.flac")
	if err := os.WriteFile(existing, []byte("already here"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := manager.Run(context.Background(), outputDir); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := renderer.outputs()
	if len(got) != 1 || got[0] != "02 - Two.flac" {
		t.Errorf("rendered %v, want only track two", got)
	}

	data, err := os.ReadFile(existing)
	if err != nil || string(data) != "already here" {
		t.Errorf("existing file was touched: %q, %v", data, err)
	}

	built, total := manager.Progress()
	if built != 2 || total != 2 {
		t.Errorf("Progress() = %d/%d, want 2/2", built, total)
	}
}

func TestRunStopsOnFailure(t *testing.T) {
	manager, renderer, outputDir := newTestManager(t)
	renderer.failOn = "01 - One"

	err := manager.Run(context.Background(), outputDir)
	if err == nil {
		t.Fatal("Run succeeded, want render failure")
	}

	if got := renderer.outputs(); len(got) != 1 {
		t.Errorf("rendered %v, want the failing track only", got)
	}
	if _, statErr := os.Stat(filepath.Join(outputDir, "02 - Two.flac")); statErr == nil {
		t.Error("track two was rendered after a fatal failure")
	}
}

func TestRunDryRun(t *testing.T) {
	var messages []string
	manager, renderer, outputDir := newTestManager(t)
	manager.onProgress = func(e ProgressEvent) { messages = append(messages, e.Message) }
	manager.SetDryRun(true)

	if err := manager.Run(context.Background(), outputDir); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(renderer.invocations) != 0 {
		t.Errorf("dry run invoked the renderer %d times", len(renderer.invocations))
	}

	printed := 0
	for _, msg := range messages {
		if strings.HasPrefix(msg, "Would run: ffmpeg ") {
			printed++
		}
	}
	if printed != 2 {
		t.Errorf("printed %d invocations, want 2", printed)
	}
}

func TestRunWritesPlaylist(t *testing.T) {
	manager, _, outputDir := newTestManager(t)
	manager.settings.CreatePlaylist = true

	if err := manager.Run(context.Background(), outputDir); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "Test Album.m3u"))
	if err != nil {
		t.Fatalf("read playlist: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "#EXTM3U\n") {
		t.Errorf("playlist is not extended M3U:\n%s", content)
	}
	// Track one: 60s file plus 1s gap. Track two: 30s file trimmed to 27s
	// by the fade (start 25, duration 2).
	if !strings.Contains(content, "#EXTINF:61,One\n01 - One.flac\n") {
		t.Errorf("missing track one entry:\n%s", content)
	}
	if !strings.Contains(content, "#EXTINF:27,Someone - Two\n02 - Two.flac\n") {
		t.Errorf("missing track two entry:\n%s", content)
	}
}

func TestRunExpandsAlbumAndYearInFileNames(t *testing.T) {
	manager, renderer, outputDir := newTestManager(t)
	manager.settings.FileNameFormat = "{year} {album} {tracknum} - {title}"

	if err := manager.Run(context.Background(), outputDir); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := renderer.outputs()
	want := []string{"2024 Test Album 01 - One.flac", "2024 Test Album 02 - Two.flac"}
	if len(got) != len(want) {
		t.Fatalf("rendered %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("render %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestVerifyStatsLyricsWithoutProbing(t *testing.T) {
	manager, _, _ := newTestManager(t)
	if err := os.WriteFile(filepath.Join(manager.assetsDir, "words.lrc"), []byte("[00:01.00]la"), 0o644); err != nil {
		t.Fatal(err)
	}
	// The fake prober knows nothing about words.lrc, so probing it would fail.
	manager.album.Tracks[1].LyricsFile = "words.lrc"

	if err := manager.Verify(context.Background()); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if err := os.Remove(filepath.Join(manager.assetsDir, "words.lrc")); err != nil {
		t.Fatal(err)
	}
	err := manager.Verify(context.Background())
	if err == nil {
		t.Fatal("Verify succeeded with a missing lyrics file")
	}
	if !strings.Contains(err.Error(), "verify asset") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestVerifyReportsMissingAsset(t *testing.T) {
	manager, _, _ := newTestManager(t)
	if err := os.Remove(filepath.Join(manager.assetsDir, "b.wav")); err != nil {
		t.Fatal(err)
	}

	err := manager.Verify(context.Background())
	if err == nil {
		t.Fatal("Verify succeeded with a missing asset")
	}
	if !strings.Contains(err.Error(), "verify asset") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInitializeRejectsMissingAssetsDir(t *testing.T) {
	settings := config.DefaultSettings()
	manager := NewManager(settings, nil)
	err := manager.Initialize(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("Initialize succeeded with a missing assets directory")
	}
}
