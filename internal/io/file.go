// Package ioutils provides file system utilities for albumforge.
//
// This package contains functions for:
//   - Reading lyrics text files
//   - Filename sanitization
//   - Directory creation
//   - Cover art resizing and conversion
//   - Platform PATH adjustment for bundled tool binaries
package ioutils

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ReadTextFile reads a UTF-8 text file and returns its contents verbatim.
//
// Used for per-track lyrics files, which are embedded unmodified into the
// output metadata. A missing file is an error; lyrics references are
// declared in the plan and a dangling reference is fatal to the run.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return string(data), nil
}

// SanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// This function ensures filenames are valid across different operating
// systems, particularly Windows which has the most restrictive naming rules.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Theme: Part 1/2")  // Returns "Theme_ Part 1_2"
//	SanitizeFileName("Track...")         // Returns "Track"
func SanitizeFileName(name string) string {
	// Replace invalid path/file characters with underscore
	// Characters: < > : " / \ | ? * and control characters (0x00-0x1f)
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots (Windows doesn't allow filenames ending with dots)
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space for cleaner names
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}

// EnsureDir creates a directory and all parent directories if they don't
// exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
