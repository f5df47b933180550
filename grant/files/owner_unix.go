//go:build !windows
// +build !windows

package files

import (
	"strconv"
	"syscall"
)

// OwnerIDs reads ownership from the stat result when the filesystem
// provides one. afero's in-memory filesystems do not, in which case both
// identifiers come back empty and callers skip ownership checks.
func (o *OsOps) OwnerIDs(path string) (string, string, error) {
	info, err := o.Fs.Stat(path)
	if err != nil {
		return "", "", err
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return "", "", nil
	}
	return strconv.FormatUint(uint64(st.Uid), 10), strconv.FormatUint(uint64(st.Gid), 10), nil
}
