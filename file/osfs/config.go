// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package osfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment variables read by [Config.ApplyEnvOverrides].
const (
	EnvRoot        = "TASK_FS_ROOT"
	EnvFileMode    = "TASK_FS_FILE_MODE"
	EnvDirMode     = "TASK_FS_DIR_MODE"
	EnvMakeParents = "TASK_FS_MAKE_PARENTS"
	EnvAtomic      = "TASK_FS_ATOMIC"
	EnvSync        = "TASK_FS_SYNC"
)

// Config holds the options of an [FS].
//
// In TOML, modes are integers and are best written in octal:
//
//	root = "/var/lib/app"
//	file_mode = 0o640
//	atomic = true
type Config struct {
	// Root is the directory relative paths resolve under.
	// Empty means the process working directory.
	Root string `toml:"root"`

	// FileMode is the permission of files created by writes.
	FileMode uint32 `toml:"file_mode"`

	// DirMode is the permission of directories created by MakeParents.
	DirMode uint32 `toml:"dir_mode"`

	// MakeParents creates missing parent directories before writing.
	MakeParents bool `toml:"make_parents"`

	// Atomic writes to a temporary sibling and renames it over the target.
	Atomic bool `toml:"atomic"`

	// Sync flushes written data to stable storage before closing.
	Sync bool `toml:"sync"`
}

// DefaultConfig returns the default options.
func DefaultConfig() Config {
	return Config{
		FileMode: 0o644,
		DirMode:  0o755,
	}
}

// LoadConfig reads options from the TOML file at path, applies the
// environment overrides, and validates the result. A missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("osfs: decode %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnvOverrides replaces options with the TASK_FS_* variables that
// are set and non-empty.
func (c *Config) ApplyEnvOverrides() error {
	if root := os.Getenv(EnvRoot); root != "" {
		c.Root = root
	}
	if err := envMode(EnvFileMode, &c.FileMode); err != nil {
		return err
	}
	if err := envMode(EnvDirMode, &c.DirMode); err != nil {
		return err
	}
	if err := envBool(EnvMakeParents, &c.MakeParents); err != nil {
		return err
	}
	if err := envBool(EnvAtomic, &c.Atomic); err != nil {
		return err
	}
	return envBool(EnvSync, &c.Sync)
}

func envMode(name string, dst *uint32) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	v = strings.TrimPrefix(strings.TrimPrefix(v, "0o"), "0O")
	mode, err := strconv.ParseUint(v, 8, 32)
	if err != nil {
		return &ValidationError{Field: name, Message: fmt.Sprintf("invalid mode %q", v)}
	}
	*dst = uint32(mode)
	return nil
}

func envBool(name string, dst *bool) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return &ValidationError{Field: name, Message: fmt.Sprintf("invalid boolean %q", v)}
	}
	*dst = b
	return nil
}

// ValidationError reports an option with an unusable value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("osfs: %s: %s", e.Field, e.Message)
}

// Validate reports the first unusable option.
func (c *Config) Validate() error {
	if c.FileMode&^uint32(fs.ModePerm) != 0 {
		return &ValidationError{Field: "file_mode", Message: fmt.Sprintf("%#o has bits outside 0o777", c.FileMode)}
	}
	if c.DirMode&^uint32(fs.ModePerm) != 0 {
		return &ValidationError{Field: "dir_mode", Message: fmt.Sprintf("%#o has bits outside 0o777", c.DirMode)}
	}
	if c.MakeParents && c.DirMode&0o300 != 0o300 {
		return &ValidationError{Field: "dir_mode", Message: "created directories must be writable and searchable by the owner"}
	}
	if strings.ContainsRune(c.Root, 0) {
		return &ValidationError{Field: "root", Message: "contains NUL"}
	}
	return nil
}
