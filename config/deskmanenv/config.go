// Package deskmanenv resolves the deskman project environment: the
// DESKMAN_ROOT/DESKMAN_DIR directories and the .deskman/config.yml file.
package deskmanenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	DeskmanRootEnvKey     = "DESKMAN_ROOT"
	DeskmanDirEnvKey      = "DESKMAN_DIR"
	DeskmanStoreURLEnvKey = "DESKMAN_STORE_URL"
)

// Directory and file names
const (
	DeskmanDirName = ".deskman"
	ConfigFileName = "config.yml"
)

// Env is the resolved project environment plus the contents of its
// config file. Zero config values mean "use the built-in default".
type Env struct {
	DeskmanRoot string  // Project directory (parent of .deskman)
	DeskmanDir  string  // Config directory, typically <root>/.deskman
	Version     int     // config.yml schema version
	Store       Store   // store: section
	Logging     Logging // logging: section
	Restore     Restore // restore: section
}

// Store selects where workspaces are persisted.
type Store struct {
	URL string `yaml:"url,omitempty"` // dir:PATH | sqlite:DSN | memory:
}

// Logging controls command log output. Presence of this section routes
// logs to files under Dir (default $DESKMAN_DIR/logs).
type Logging struct {
	Dir           string `yaml:"dir,omitempty"`
	Format        string `yaml:"format,omitempty"`        // human | text | json
	Level         string `yaml:"level,omitempty"`         // DEBUG | INFO | WARN | ERROR
	RetentionDays int    `yaml:"retentionDays,omitempty"` // default 7
}

// Restore tunes workspace restore behavior.
type Restore struct {
	DelayMs int `yaml:"delayMs,omitempty"` // pause between app launches, default 500
}

type configFile struct {
	Version int     `yaml:"version"`
	Store   Store   `yaml:"store"`
	Logging Logging `yaml:"logging,omitempty"`
	Restore Restore `yaml:"restore,omitempty"`
}

// Resolve locates the project and loads its config file.
//
// deskmanRoot and deskmanDir usually come from the DESKMAN_ROOT and
// DESKMAN_DIR environment variables; either may be empty. An empty root
// triggers an upward search from workDir for a directory containing
// .deskman/. An empty dir defaults to <root>/.deskman. The config file
// itself is optional.
func Resolve(deskmanRoot, deskmanDir, workDir string) (*Env, error) {
	if deskmanRoot == "" {
		found, err := searchForDeskmanRoot(workDir)
		if err != nil {
			return nil, fmt.Errorf("searching for %s directory: %w", DeskmanDirName, err)
		}
		if found == "" {
			return nil, fmt.Errorf("DESKMAN_ROOT not specified and %s directory not found in ancestors of %q", DeskmanDirName, workDir)
		}
		deskmanRoot = found
	}

	deskmanRoot, err := requireDir("DESKMAN_ROOT", deskmanRoot)
	if err != nil {
		return nil, err
	}
	if deskmanDir == "" {
		deskmanDir = filepath.Join(deskmanRoot, DeskmanDirName)
	}
	deskmanDir, err = requireDir("DESKMAN_DIR", deskmanDir)
	if err != nil {
		return nil, err
	}

	env := &Env{DeskmanRoot: deskmanRoot, DeskmanDir: deskmanDir}
	if err := env.loadConfigFile(); err != nil {
		return nil, err
	}
	return env, nil
}

// requireDir normalizes path to an absolute, cleaned directory path and
// verifies it exists.
func requireDir(label, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s to absolute path: %w", label, err)
	}
	abs = filepath.Clean(abs)
	info, err := os.Stat(abs)
	switch {
	case err != nil:
		return "", fmt.Errorf("%s %q does not exist: %w", label, abs, err)
	case !info.IsDir():
		return "", fmt.Errorf("%s %q is not a directory", label, abs)
	}
	return abs, nil
}

// searchForDeskmanRoot walks from startDir toward the filesystem root
// looking for a directory that contains .deskman/. Returns that parent
// directory, or "" when the walk hits the root without a match.
func searchForDeskmanRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, DeskmanDirName)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// loadConfigFile merges .deskman/config.yml into e. An absent file is
// fine; the defaults stand.
func (e *Env) loadConfigFile() error {
	path := filepath.Join(e.DeskmanDir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %q: %w", path, err)
	}
	var cf configFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("parsing config file %q: %w", path, err)
	}
	e.Version = cf.Version
	e.Store = cf.Store
	e.Logging = cf.Logging
	e.Restore = cf.Restore
	return nil
}

// ExpandVars replaces $DESKMAN_ROOT and $DESKMAN_DIR in s with the
// resolved directories.
func (e *Env) ExpandVars(s string) string {
	s = strings.ReplaceAll(s, "$DESKMAN_ROOT", e.DeskmanRoot)
	return strings.ReplaceAll(s, "$DESKMAN_DIR", e.DeskmanDir)
}

// StoreURL returns the configured store URL, defaulting to the directory
// store under DESKMAN_DIR.
func (e *Env) StoreURL() string {
	if e.Store.URL != "" {
		return e.ExpandVars(e.Store.URL)
	}
	return "dir:" + filepath.Join(e.DeskmanDir, "workspaces")
}

// LogDir returns the configured log directory, defaulting to
// $DESKMAN_DIR/logs.
func (e *Env) LogDir() string {
	if e.Logging.Dir != "" {
		return e.ExpandVars(e.Logging.Dir)
	}
	return filepath.Join(e.DeskmanDir, "logs")
}

// InitialConfigYAML renders the config.yml written by `deskman init`.
func InitialConfigYAML() ([]byte, error) {
	cf := configFile{
		Version: 1,
		Store:   Store{URL: "dir:$DESKMAN_DIR/workspaces"},
		Restore: Restore{DelayMs: 500},
	}
	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&cf); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("closing yaml encoder: %w", err)
	}
	return []byte(buf.String()), nil
}
