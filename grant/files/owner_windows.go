//go:build windows
// +build windows

package files

// OwnerIDs is a stub on Windows, where POSIX uid/gid ownership does not
// apply. Callers treat empty identifiers as "ownership unknown".
func (o *OsOps) OwnerIDs(path string) (string, string, error) {
	if _, err := o.Fs.Stat(path); err != nil {
		return "", "", err
	}
	return "", "", nil
}
