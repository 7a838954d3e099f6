//go:build unix

package main

import (
	"io/fs"
	"syscall"
)

// ownerIDs extracts the numeric owner and group ids from the platform
// stat data. Ownership resolution is POSIX-only; when the underlying
// data is not a Stat_t the caller falls back to placeholder names.
func ownerIDs(info fs.FileInfo) (uint32, uint32, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0, false
	}
	return uint32(stat.Uid), uint32(stat.Gid), true
}
