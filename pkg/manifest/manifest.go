// Package manifest reads the package manifest whose version field is served in
// the greeting. The manifest is read exactly once per call; callers keep the
// result for the lifetime of the process.
//
// Supported formats are chosen by file extension:
//
//   - .json (and anything unknown): npm style package.json
//   - .toml: top-level version, or [package].version as in Cargo.toml
//   - .yaml / .yml: top-level version
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound is returned when the manifest file does not exist.
	ErrNotFound = errors.New("manifest not found")
	// ErrMalformed is returned when the manifest cannot be decoded.
	ErrMalformed = errors.New("manifest is malformed")
	// ErrNoVersion is returned when the manifest has no usable version field.
	ErrNoVersion = errors.New("manifest has no version")
	// ErrInvalidSemver is returned by CheckSemver for non semantic versions.
	ErrInvalidSemver = errors.New("version is not a semantic version")
)

// Format is the encoding of a manifest document.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Manifest is the subset of a package manifest hellosrv cares about.
type Manifest struct {
	Path    string `json:"path" yaml:"path"`
	Format  Format `json:"format" yaml:"format"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Version string `json:"version" yaml:"version"`
}

// document mirrors the fields read from every format. Version is decoded
// loosely so a numeric or missing value is reported as ErrNoVersion instead
// of a decode error.
type document struct {
	Name    any `json:"name" toml:"name" yaml:"name"`
	Version any `json:"version" toml:"version" yaml:"version"`
	Package *struct {
		Name    any `toml:"name"`
		Version any `toml:"version"`
	} `json:"-" toml:"package" yaml:"-"`
}

// DetectFormat returns the manifest format implied by the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	m, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// Parse decodes a manifest document of the given format.
func Parse(data []byte, format Format) (*Manifest, error) {
	var doc document
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		format = FormatJSON
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	name, version := doc.Name, doc.Version
	if version == nil && doc.Package != nil {
		name, version = doc.Package.Name, doc.Package.Version
	}

	v, ok := version.(string)
	if !ok || strings.TrimSpace(v) == "" {
		return nil, ErrNoVersion
	}
	n, _ := name.(string)

	return &Manifest{Format: format, Name: n, Version: v}, nil
}

// ReadVersion loads the manifest at path and returns its version.
func ReadVersion(path string) (string, error) {
	m, err := Load(path)
	if err != nil {
		return "", err
	}
	return m.Version, nil
}

// CheckSemver reports whether version is a full MAJOR.MINOR.PATCH semantic
// version. A missing leading "v", as written in package.json, is accepted;
// shorthand forms such as "1" or "v1.2" are not.
func CheckSemver(version string) error {
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) || semver.Canonical(v) != strings.TrimSuffix(v, semver.Build(v)) {
		return fmt.Errorf("%w: %q", ErrInvalidSemver, version)
	}
	return nil
}
