// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package osfs implements [file.Platform] on the operating system's file
// system.
package osfs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"code.hybscloud.com/task/file"
	"github.com/google/uuid"
)

// FS performs file operations on the host file system.
// It is safe for concurrent use; each call owns its handles.
type FS struct {
	cfg Config
}

var _ file.Platform = (*FS)(nil)

// New returns an FS with the given options.
func New(cfg Config) (*FS, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &FS{cfg: cfg}, nil
}

// Default returns an FS with [DefaultConfig].
func Default() *FS {
	return &FS{cfg: DefaultConfig()}
}

// Config returns the options of fsys.
func (fsys *FS) Config() Config {
	return fsys.cfg
}

// resolve turns raw path bytes into an OS path.
func (fsys *FS) resolve(op string, path []byte) (string, error) {
	name := string(path)
	if name == "" || strings.ContainsRune(name, 0) {
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	if fsys.cfg.Root != "" && !filepath.IsAbs(name) {
		name = filepath.Join(fsys.cfg.Root, name)
	}
	return name, nil
}

// FileReadBytes reads the whole file at path.
func (fsys *FS) FileReadBytes(path []byte) ([]byte, error) {
	name, err := fsys.resolve("read", path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: syscall.EISDIR}
	}
	return io.ReadAll(f)
}

// FileWriteBytes replaces the content of the file at path with b.
func (fsys *FS) FileWriteBytes(path []byte, b []byte) error {
	name, err := fsys.resolve("write", path)
	if err != nil {
		return err
	}
	if fsys.cfg.MakeParents {
		if err := os.MkdirAll(filepath.Dir(name), fs.FileMode(fsys.cfg.DirMode)); err != nil {
			return err
		}
	}
	if fsys.cfg.Atomic {
		return fsys.writeAtomic(name, b)
	}
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fs.FileMode(fsys.cfg.FileMode))
	if err != nil {
		return err
	}
	return fsys.finish(f, b)
}

// FileWriteUtf8 replaces the content of the file at path with s.
func (fsys *FS) FileWriteUtf8(path []byte, s string) error {
	return fsys.FileWriteBytes(path, []byte(s))
}

// FileDelete removes the file at path. Directories are refused.
func (fsys *FS) FileDelete(path []byte) error {
	name, err := fsys.resolve("remove", path)
	if err != nil {
		return err
	}
	info, err := os.Lstat(name)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "remove", Path: name, Err: syscall.EISDIR}
	}
	return os.Remove(name)
}

// writeAtomic writes b to a temporary sibling of name and renames it
// into place. The temporary file is removed on failure.
func (fsys *FS) writeAtomic(name string, b []byte) (err error) {
	if info, statErr := os.Stat(name); statErr == nil && info.IsDir() {
		return &fs.PathError{Op: "write", Path: name, Err: syscall.EISDIR}
	}
	tmp := name + "." + uuid.NewString() + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fs.FileMode(fsys.cfg.FileMode))
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()
	if err = fsys.finish(f, b); err != nil {
		return err
	}
	return os.Rename(tmp, name)
}

// finish writes b to f, optionally syncs, and closes f.
// A close failure is reported along with any earlier one.
func (fsys *FS) finish(f *os.File, b []byte) error {
	_, err := f.Write(b)
	if err == nil && fsys.cfg.Sync {
		err = f.Sync()
	}
	return errors.Join(err, f.Close())
}
