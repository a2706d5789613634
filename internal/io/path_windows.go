//go:build windows

package ioutils

import "os"

// PreferWorkingDirBinaries prepends the current working directory to PATH.
//
// Users used to running commands inside a shell on Windows may expect
// executables in the same directory as the program to be examined before
// PATH folders, so ffmpeg/ffprobe binaries dropped next to albumforge win
// over others of the same name elsewhere on the system.
func PreferWorkingDirBinaries() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	if path := os.Getenv("PATH"); path != "" {
		os.Setenv("PATH", wd+";"+path)
	} else {
		os.Setenv("PATH", wd)
	}
}
