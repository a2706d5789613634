// Package build orchestrates an album build from plan to rendered files.
//
// The Manager resolves the album plan, preflights the referenced assets and
// renders each track in album order through the external renderer. Progress
// is reported through a callback so both the CLI and the TUI can observe a
// run without the package knowing about either.
package build
