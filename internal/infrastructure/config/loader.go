package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// AppFile is the name of the application config inside the config directory.
const AppFile = "app.json"

// Loader loads application configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from. Asset and audio paths in
// app.json are relative to it.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadApp loads app.json, fills unset values from Defaults and validates
// the result.
func (l *Loader) LoadApp() (*AppConfig, error) {
	data, err := fs.ReadFile(l.fsys, AppFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", AppFile, err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", AppFile, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s in %s: %w", AppFile, l.basePath, err)
	}

	return &cfg, nil
}
