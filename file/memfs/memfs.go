// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package memfs implements [file.Platform] in memory, with failures
// injectable by host tag name.
//
// It is meant for tests and staging areas:
//
//	mem := memfs.New()
//	mem.Fail("locked.txt", "PermissionDenied")
//	r := task.Run(file.ReadBytes(file.FromString("locked.txt")), file.NewHost(mem))
//	// r fails with ReadPermissionDenied
package memfs

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"sync/atomic"

	"code.hybscloud.com/task/file"
)

// FS is an in-memory file system. It is safe for concurrent use.
type FS struct {
	mu     sync.RWMutex
	files  map[string][]byte
	faults map[string]string
	ops    atomic.Int64
}

var _ file.Platform = (*FS)(nil)

// New returns an empty FS.
func New() *FS {
	return &FS{
		files:  make(map[string][]byte),
		faults: make(map[string]string),
	}
}

// Fail makes every later operation on name fail with the given host tag
// name, as the host would report it. Names that are not in the taxonomy
// are classified as Unrecognized; write-only names read as Unrecognized.
// An Unrecognized failure keeps the tag name in its cause.
func (m *FS) Fail(name, tag string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faults[cleanPath(name)] = tag
}

// Heal removes the failure injected on name.
func (m *FS) Heal(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.faults, cleanPath(name))
}

// Files returns a snapshot of all file contents keyed by cleaned path.
func (m *FS) Files() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string][]byte, len(m.files))
	for name, b := range m.files {
		out[name] = bytes.Clone(b)
	}
	return out
}

// Ops returns the number of platform calls made so far.
func (m *FS) Ops() int64 {
	return m.ops.Load()
}

// FileReadBytes returns a copy of the content at path.
func (m *FS) FileReadBytes(p []byte) ([]byte, error) {
	m.ops.Add(1)
	name, err := resolve("read", p)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if tag, ok := m.faults[name]; ok {
		return nil, readFault(tag)
	}
	b, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// FileWriteBytes stores a copy of b at path.
func (m *FS) FileWriteBytes(p []byte, b []byte) error {
	return m.store(p, bytes.Clone(b))
}

// FileWriteUtf8 stores the bytes of s at path.
func (m *FS) FileWriteUtf8(p []byte, s string) error {
	return m.store(p, []byte(s))
}

func (m *FS) store(p []byte, b []byte) error {
	m.ops.Add(1)
	name, err := resolve("write", p)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if tag, ok := m.faults[name]; ok {
		return writeFault(tag)
	}
	if b == nil {
		b = []byte{}
	}
	m.files[name] = b
	return nil
}

// FileDelete removes the content at path.
func (m *FS) FileDelete(p []byte) error {
	m.ops.Add(1)
	name, err := resolve("remove", p)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if tag, ok := m.faults[name]; ok {
		return writeFault(tag)
	}
	if _, ok := m.files[name]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, name)
	return nil
}

func readFault(tag string) error {
	if e := file.ParseReadErr(tag); e != file.ReadUnrecognized {
		return e
	}
	return fmt.Errorf("%s: %w", tag, file.ReadUnrecognized)
}

func writeFault(tag string) error {
	if e := file.ParseWriteErr(tag); e != file.WriteUnrecognized {
		return e
	}
	return fmt.Errorf("%s: %w", tag, file.WriteUnrecognized)
}

func resolve(op string, p []byte) (string, error) {
	name := string(p)
	if name == "" || strings.ContainsRune(name, 0) {
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	return cleanPath(name), nil
}

// cleanPath normalizes name to a rooted slash path.
func cleanPath(name string) string {
	return path.Clean("/" + name)
}
