// Package config manages the per-repository changelog settings file using koanf.
//
// Settings live in <repository-root>/.changelog/changelog.config as a JSON object.
// Values are layered with priority: environment variables (CHANGELOG_*) > settings
// file > defaults. A missing file is created with defaults before it is read; a file
// that is not valid JSON is moved aside to changelog.config.bak and replaced with
// defaults. Unreadable files and invalid values are reported as errors.
package config

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "CHANGELOG_"

// SourceMode selects where release boundaries come from. It is persisted but not
// yet consulted by generation.
type SourceMode string

const (
	// SourceFile keeps releases in a changelog file.
	SourceFile SourceMode = "File"
	// SourceTag derives releases from tags.
	SourceTag SourceMode = "Tag"
)

// Valid reports whether m is a known source mode.
func (m SourceMode) Valid() bool {
	return m == SourceFile || m == SourceTag
}

// Configuration represents the changelog settings file.
type Configuration struct {
	// Source is an inert extension point (File or Tag).
	Source SourceMode `koanf:"source"`
	// LastGeneration is an advisory unix timestamp of the last published changelog.
	LastGeneration int64 `koanf:"last_generation"`
	// DateFormat is a strftime pattern used for the draft heading date.
	DateFormat string `koanf:"date_format"`
	// DiffFormat builds the comparison link from repositoryUri, base and latest.
	DiffFormat string `koanf:"diff_format"`
	// CommitDetailPageFormat builds each commit link from repositoryUri and commit.
	CommitDetailPageFormat string `koanf:"commit_detail_page_format"`
}

// LastGenerationTime returns LastGeneration as a UTC time.
func (c *Configuration) LastGenerationTime() time.Time {
	return time.Unix(c.LastGeneration, 0).UTC()
}

// toMap flattens the configuration into file keys.
func (c *Configuration) toMap() map[string]any {
	return map[string]any{
		"source":                    string(c.Source),
		"last_generation":           c.LastGeneration,
		"date_format":               c.DateFormat,
		"diff_format":               c.DiffFormat,
		"commit_detail_page_format": c.CommitDetailPageFormat,
	}
}

// ReadError reports a settings file that exists but could not be read.
type ReadError struct {
	FilePath string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.FilePath, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// Root is the repository root that holds the .changelog directory.
	Root string
	// Logger receives warnings about recovered problems (default: discard).
	Logger *zerolog.Logger
	// SkipEnv ignores CHANGELOG_* environment overrides.
	SkipEnv bool
	// ReadOnly never creates, moves or rewrites the settings file. A missing file
	// loads as defaults and a malformed one is returned as a *SyntaxError.
	ReadOnly bool
}

// Load loads configuration for the repository rooted at root.
func Load(root string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{Root: root})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	log := opts.Logger
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	path := Path(opts.Root)

	var (
		exists bool
		err    error
	)
	if opts.ReadOnly {
		exists, err = inspectFile(path)
	} else {
		exists, err = prepareFile(opts.Root, log)
	}
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := loadDefaults(k); err != nil {
		return nil, err
	}

	if exists {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, &ReadError{FilePath: path, Err: err}
		}
		log.Debug().Str("path", path).Msg("configuration file loaded")
	}

	if !opts.SkipEnv {
		if err := loadEnvironmentConfig(k); err != nil {
			return nil, err
		}
	}

	return finalizeConfig(k, path)
}

// prepareFile makes sure a well-formed settings file exists, creating or resetting it.
func prepareFile(root string, log *zerolog.Logger) (bool, error) {
	if err := ensureFile(root, log); err != nil {
		return false, err
	}

	if err := checkSyntax(Path(root)); err != nil {
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			return false, err
		}
		if err := resetMalformed(root, syntaxErr, log); err != nil {
			return false, err
		}
	}
	return true, nil
}

// inspectFile reports whether the settings file exists and checks its syntax without touching it.
func inspectFile(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &ReadError{FilePath: path, Err: err}
	}
	if err := checkSyntax(path); err != nil {
		return false, err
	}
	return true, nil
}

// ensureFile writes defaults when no settings file exists yet.
func ensureFile(root string, log *zerolog.Logger) error {
	path := Path(root)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return &ReadError{FilePath: path, Err: err}
	}

	log.Warn().Str("path", path).Msg("no config file found, creating one with defaults")
	return WriteDefaults(root)
}

// checkSyntax reads the settings file and validates it as a JSON object.
func checkSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ReadError{FilePath: path, Err: err}
	}
	return ValidateJSONSyntax(data, path)
}

// resetMalformed moves a malformed settings file aside and writes defaults in its place.
func resetMalformed(root string, cause *SyntaxError, log *zerolog.Logger) error {
	path := Path(root)
	backup := BackupPath(root)

	if err := os.Rename(path, backup); err != nil {
		return &ReadError{FilePath: path, Err: fmt.Errorf("moving malformed config aside: %w", err)}
	}
	log.Warn().
		Err(cause).
		Str("backup", backup).
		Msg("config file is malformed, resetting to defaults")

	return WriteDefaults(root)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) error {
	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys
// Example: CHANGELOG_DATE_FORMAT -> date_format
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// finalizeConfig unmarshals and validates the merged configuration.
func finalizeConfig(k *koanf.Koanf, path string) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, &ValidationError{FilePath: path, Message: fmt.Sprintf("decoding values: %v", err)}
	}

	if err := cfg.validate(path); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// WriteDefaults writes the default configuration, replacing any existing file.
func WriteDefaults(root string) error {
	return Save(root, Defaults())
}

// Save persists cfg to the settings file of the repository rooted at root.
// The file is replaced atomically.
func Save(root string, cfg *Configuration) error {
	if err := cfg.validate(Path(root)); err != nil {
		return err
	}

	data, err := marshal(cfg.toMap(), json.Parser())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	var pretty bytes.Buffer
	if err := stdjson.Indent(&pretty, data, "", "  "); err != nil {
		return fmt.Errorf("formatting config: %w", err)
	}
	pretty.WriteByte('\n')

	return writeAtomic(Path(root), pretty.Bytes())
}

// MarshalYAML renders cfg as YAML for display.
func MarshalYAML(cfg *Configuration) ([]byte, error) {
	return marshal(cfg.toMap(), yaml.Parser())
}

// parser is the subset of koanf.Parser used for encoding.
type parser interface {
	Marshal(map[string]any) ([]byte, error)
}

func marshal(values map[string]any, p parser) ([]byte, error) {
	k := koanf.New(".")
	for key, value := range values {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return p.Marshal(k.Raw())
}

// writeAtomic writes data to a temporary sibling and renames it over path.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
