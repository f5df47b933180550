package files

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/spf13/afero"
)

// ModeKeyFile is the permission bits for authorized-keys files and their
// backups. Only the owning account may read or write them; sshd rejects
// key files that are group- or world-writable under StrictModes.
const ModeKeyFile = fs.FileMode(0600)

// ModeSSHDir is the permission bits for a per-account .ssh directory.
const ModeSSHDir = fs.FileMode(0700)

// Ops abstracts the filesystem operations the grant logic performs, so
// the whole core can run against an in-memory filesystem in tests.
type Ops interface {
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
	// AppendFile appends data to the file at path, creating it with perm
	// if it does not exist.
	AppendFile(path string, data []byte, perm fs.FileMode) error
	Rename(oldpath string, newpath string) error
	MkdirAllWithPerm(path string, perm fs.FileMode) error
	// Chown sets the owning user and group of path. uid and gid are the
	// decimal identifier strings found on user.User. On platforms without
	// POSIX ownership this is a no-op.
	Chown(path string, uid string, gid string) error
	// OwnerIDs reports the owning uid and gid of path as decimal strings.
	// Both are empty when the underlying filesystem does not expose
	// ownership (in-memory filesystems, Windows).
	OwnerIDs(path string) (uid string, gid string, err error)
}

// OsOps is the default Ops implementation. It delegates to an afero.Fs
// for file content operations and uses os.Chown for ownership, since
// afero does not model ownership.
type OsOps struct {
	Fs afero.Fs
}

func NewOsOps(vfs afero.Fs) *OsOps {
	return &OsOps{Fs: vfs}
}

func (o *OsOps) Stat(path string) (fs.FileInfo, error) {
	return o.Fs.Stat(path)
}

func (o *OsOps) Exists(path string) (bool, error) {
	return afero.Exists(o.Fs, path)
}

func (o *OsOps) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(o.Fs, path)
}

func (o *OsOps) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if err := o.Fs.MkdirAll(filepath.Dir(path), ModeSSHDir); err != nil {
		return err
	}
	return afero.WriteFile(o.Fs, path, data, perm)
}

func (o *OsOps) AppendFile(path string, data []byte, perm fs.FileMode) error {
	f, err := o.Fs.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (o *OsOps) Rename(oldpath string, newpath string) error {
	return o.Fs.Rename(oldpath, newpath)
}

func (o *OsOps) MkdirAllWithPerm(path string, perm fs.FileMode) error {
	return o.Fs.MkdirAll(path, perm)
}

func (o *OsOps) Chown(path string, uid string, gid string) error {
	if uid == "" && gid == "" {
		return nil
	}
	// POSIX ownership has no meaning on Windows; nothing to restore.
	if runtime.GOOS == "windows" {
		return nil
	}
	uidN := -1
	gidN := -1
	if uid != "" {
		n, err := strconv.Atoi(uid)
		if err != nil {
			return err
		}
		uidN = n
	}
	if gid != "" {
		n, err := strconv.Atoi(gid)
		if err != nil {
			return err
		}
		gidN = n
	}
	return o.Fs.Chown(path, uidN, gidN)
}
