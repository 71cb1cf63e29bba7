package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		content     string
		wantName    string
		wantVersion string
		wantFormat  Format
	}{
		{
			name:        "package.json",
			file:        "package.json",
			content:     `{"name": "app", "version": "1.0.0", "main": "app.js", "scripts": {"start": "node app.js"}}`,
			wantName:    "app",
			wantVersion: "1.0.0",
			wantFormat:  FormatJSON,
		},
		{
			name:        "cargo style toml",
			file:        "Cargo.toml",
			content:     "[package]\nname = \"app\"\nversion = \"0.3.1\"\n",
			wantName:    "app",
			wantVersion: "0.3.1",
			wantFormat:  FormatTOML,
		},
		{
			name:        "top level toml",
			file:        "manifest.toml",
			content:     "version = \"2.0.0-rc.1\"\n",
			wantVersion: "2.0.0-rc.1",
			wantFormat:  FormatTOML,
		},
		{
			name:        "yaml",
			file:        "manifest.yml",
			content:     "name: app\nversion: \"1.2.3\"\n",
			wantName:    "app",
			wantVersion: "1.2.3",
			wantFormat:  FormatYAML,
		},
		{
			name:        "unknown extension falls back to json",
			file:        "manifest",
			content:     `{"version": "9.9.9"}`,
			wantVersion: "9.9.9",
			wantFormat:  FormatJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			m, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, path, m.Path)
			assert.Equal(t, tt.wantName, m.Name)
			assert.Equal(t, tt.wantVersion, m.Version)
			assert.Equal(t, tt.wantFormat, m.Format)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{name: "malformed json", file: "package.json", content: `{"version": `, want: ErrMalformed},
		{name: "empty json", file: "package.json", content: ``, want: ErrMalformed},
		{name: "json with trailing data", file: "package.json", content: `{"version": "1.0.0"} trailing junk`, want: ErrMalformed},
		{name: "two json documents", file: "package.json", content: `{"version": "1.0.0"}{"version": "2.0.0"}`, want: ErrMalformed},
		{name: "malformed toml", file: "m.toml", content: "version = ", want: ErrMalformed},
		{name: "missing version", file: "package.json", content: `{"name": "app"}`, want: ErrNoVersion},
		{name: "empty version", file: "package.json", content: `{"version": "  "}`, want: ErrNoVersion},
		{name: "numeric version", file: "package.json", content: `{"version": 1}`, want: ErrNoVersion},
		{name: "empty yaml", file: "m.yaml", content: ``, want: ErrNoVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "package.json"))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReadVersionIsASnapshot(t *testing.T) {
	path := writeFile(t, "package.json", `{"version": "1.0.0"}`)

	v, err := ReadVersion(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"version": "2.0.0"}`), 0644))
	assert.Equal(t, "1.0.0", v)

	v2, err := ReadVersion(path)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", v2)
}

func TestCheckSemver(t *testing.T) {
	for _, v := range []string{"1.0.0", "v1.0.0", "0.1.0-beta.2", "1.2.3+build.5"} {
		assert.NoError(t, CheckSemver(v), v)
	}
	for _, v := range []string{"latest", "1.0.0.0", "", "one", "1", "1.0", "v2", "v1.2+build"} {
		assert.ErrorIs(t, CheckSemver(v), ErrInvalidSemver, v)
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat("package.json"))
	assert.Equal(t, FormatTOML, DetectFormat("Cargo.TOML"))
	assert.Equal(t, FormatYAML, DetectFormat("a/b/manifest.yaml"))
	assert.Equal(t, FormatJSON, DetectFormat("VERSION"))
}
