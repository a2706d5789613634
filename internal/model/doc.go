// Package model defines the core data structures used throughout
// albumforge.
//
// # Source
//
// Source describes one audio input of a track: a terminal file path plus an
// ordered chain of effects (fade in, fade out, volume) applied before use:
//
//	src := model.NewSource("/assets/boss_loop.wav").
//		With(model.FadeOut{Start: 110, Duration: 6.5})
//
// Effects apply in list order; the first effect's input is the raw file.
// Fade offsets are always absolute by the time they are stored here; the
// fx package resolves relative ("seconds before end") offsets eagerly using
// a duration prober.
//
// # Track and Album
//
// Track is the declarative recipe for one output file: ordered parts,
// optional trailing silence gap, title, optional artist and lyrics file.
// Album is the ordered track list; track numbers are 1-based positions:
//
//	track := model.Track{
//	    Name:  "Ark",
//	    Parts: []model.Source{intro, loop},
//	    Gap:   1,
//	}
//	tmpl := model.FileNameTemplate{Format: "{tracknum} - {title}", Ext: ".flac"}
//	track.FileName(3, tmpl) // "03 - Ark.flac"
//
// Available filename placeholders: {tracknum}, {title}, {artist}, {album},
// {year}.
package model
