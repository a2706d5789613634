//go:build !windows

package ioutils

// PreferWorkingDirBinaries is a no-op outside Windows; PATH semantics are
// left untouched.
func PreferWorkingDirBinaries() {}
