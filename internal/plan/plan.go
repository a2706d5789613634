package plan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/corvess/albumforge/internal/fx"
	"github.com/corvess/albumforge/internal/model"
)

// JSON plan schema. Effects use the same vocabulary as the fx package:
// "fade_in" (duration), "fade_out" (start, optional duration; a negative
// start counts from end of file) and "volume" (value, verbatim).
type fileAlbum struct {
	Title  string      `json:"title"`
	Artist string      `json:"artist"`
	Year   string      `json:"year"`
	Tracks []fileTrack `json:"tracks"`
}

type fileTrack struct {
	Name       string     `json:"name"`
	Artist     string     `json:"artist"`
	LyricsFile string     `json:"lyrics_file"`
	Gap        float64    `json:"gap"`
	Parts      []filePart `json:"parts"`
}

type filePart struct {
	File    string       `json:"file"`
	Effects []fileEffect `json:"effects"`
}

type fileEffect struct {
	Type     string   `json:"type"`
	Duration *float64 `json:"duration,omitempty"`
	Start    *float64 `json:"start,omitempty"`
	Value    string   `json:"value,omitempty"`
}

// Load reads an album plan from a JSON file and resolves it through the
// chain: asset names against the chain's root, relative fade offsets through
// its prober. Resolution is eager, so a missing asset fails here, before any
// rendering work.
func Load(path string, chain *fx.Chain) (*model.Album, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	var raw fileAlbum
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if len(raw.Tracks) == 0 {
		return nil, fmt.Errorf("plan %s: no tracks", path)
	}

	album := &model.Album{
		Title:  raw.Title,
		Artist: raw.Artist,
		Year:   raw.Year,
	}
	for i, rt := range raw.Tracks {
		track, err := buildTrack(rt, chain)
		if err != nil {
			return nil, fmt.Errorf("plan %s: track %d (%q): %w", path, i+1, rt.Name, err)
		}
		album.Tracks = append(album.Tracks, track)
	}
	if err := chain.Err(); err != nil {
		return nil, fmt.Errorf("plan %s: %w", path, err)
	}
	return album, nil
}

func buildTrack(rt fileTrack, chain *fx.Chain) (model.Track, error) {
	if rt.Name == "" {
		return model.Track{}, fmt.Errorf("missing name")
	}
	if len(rt.Parts) == 0 {
		return model.Track{}, fmt.Errorf("no parts")
	}
	if rt.Gap < 0 {
		return model.Track{}, fmt.Errorf("negative gap %v", rt.Gap)
	}

	track := model.Track{
		Name:       rt.Name,
		Artist:     rt.Artist,
		LyricsFile: rt.LyricsFile,
		Gap:        rt.Gap,
	}
	for _, part := range rt.Parts {
		if part.File == "" {
			return model.Track{}, fmt.Errorf("part with no file")
		}
		src := chain.Source(part.File)
		for _, effect := range part.Effects {
			var err error
			src, err = applyEffect(src, effect, chain)
			if err != nil {
				return model.Track{}, err
			}
		}
		track.Parts = append(track.Parts, src)
	}
	return track, nil
}

func applyEffect(src model.Source, effect fileEffect, chain *fx.Chain) (model.Source, error) {
	switch effect.Type {
	case "fade_in":
		if effect.Duration == nil {
			return src, fmt.Errorf("fade_in without duration")
		}
		return chain.FadeIn(src, *effect.Duration), nil
	case "fade_out":
		if effect.Start == nil {
			return src, fmt.Errorf("fade_out without start")
		}
		if effect.Duration == nil {
			return chain.FadeOutToEnd(src, *effect.Start), nil
		}
		return chain.FadeOut(src, *effect.Start, *effect.Duration), nil
	case "volume":
		if effect.Value == "" {
			return src, fmt.Errorf("volume without value")
		}
		return chain.Volume(src, effect.Value), nil
	default:
		return src, fmt.Errorf("unknown effect type %q", effect.Type)
	}
}
