// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package file

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Path is an opaque, immutable file-system path.
// It holds raw bytes and need not be valid UTF-8.
type Path struct {
	raw string
}

// FromString creates a Path from s.
func FromString(s string) Path {
	return Path{raw: s}
}

// FromBytes creates a Path from b. The bytes are copied.
func FromBytes(b []byte) Path {
	return Path{raw: string(b)}
}

// Bytes returns a copy of the raw path bytes.
func (p Path) Bytes() []byte {
	return []byte(p.raw)
}

// String returns the path for display. Invalid UTF-8 sequences are
// replaced with U+FFFD, so the result may not name the same file.
func (p Path) String() string {
	s, err := unicode.UTF8.NewDecoder().String(p.raw)
	if err != nil {
		return strings.ToValidUTF8(p.raw, "�")
	}
	return s
}

// Valid reports whether p can name a file: non-empty and free of NUL bytes.
// Hosts report invalid paths as InvalidFilename.
func (p Path) Valid() bool {
	return p.raw != "" && !strings.ContainsRune(p.raw, 0)
}

// Join appends elem to p using the OS separator.
func (p Path) Join(elem ...string) Path {
	return Path{raw: filepath.Join(append([]string{p.raw}, elem...)...)}
}
