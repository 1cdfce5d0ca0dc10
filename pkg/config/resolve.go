package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "scicalc.yaml"

// UserPath returns the per-user configuration path, or "" when the user
// config directory cannot be determined.
func UserPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "scicalc", "config.yaml")
}

// Resolve picks the configuration file to use: the explicit path when set,
// otherwise ./scicalc.yaml, otherwise the per-user file. It returns "" when
// no candidate exists.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}

	for _, p := range []string{FileName, UserPath()} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// LoadResolved resolves the path and loads it, falling back to Default when
// no file is found. The returned path is the file that was read, if any.
func LoadResolved(explicit string) (Config, string, error) {
	path := Resolve(explicit)
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		if explicit == "" && errors.Is(err, fs.ErrNotExist) {
			return Default(), "", nil
		}
		return Config{}, path, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, path, err
	}

	return cfg, path, nil
}

// Write saves cfg to path, creating parent directories.
func Write(path string, cfg Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
