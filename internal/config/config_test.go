package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config dir at an empty temp tree.
func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "xdg"))
	t.Setenv("HOME", filepath.Join(root, "home"))
	return root
}

func write(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLoad_NoConfigAvailable(t *testing.T) {
	isolate(t)
	f, path, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, File{}, f)
}

func TestLoad_LocalYAML(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	write(t, filepath.Join(dir, ".breathes.yaml"), "log_dir: out\ntheme: orca\nci: true\nclear_screen: true\n")

	f, path, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".breathes.yaml"), path)
	assert.Equal(t, File{LogDir: "out", Theme: "orca", CI: true, ClearScreen: true}, f)
}

func TestLoad_LocalTOML(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	write(t, filepath.Join(dir, ".breathes.toml"), "format = \"json\"\nshell = \"/bin/bash\"\ndebug = true\n")

	f, _, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "json", f.Format)
	assert.Equal(t, "/bin/bash", f.Shell)
	assert.True(t, f.Debug)
}

func TestLoad_YAMLWinsOverTOML(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	write(t, filepath.Join(dir, ".breathes.yml"), "theme: mono\n")
	write(t, filepath.Join(dir, ".breathes.toml"), "theme = \"orca\"\n")

	f, path, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, ".breathes.yml", filepath.Base(path))
	assert.Equal(t, "mono", f.Theme)
}

func TestLoad_UsesXDGPath_When_LocalMissing(t *testing.T) {
	root := isolate(t)
	xdgPath := filepath.Join(root, "xdg", "breathes", "config.yaml")
	write(t, xdgPath, "log_dir: /tmp/breathes-logs\n")

	f, path, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, xdgPath, path)
	assert.Equal(t, "/tmp/breathes-logs", f.LogDir)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	isolate(t)
	_, _, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	write(t, filepath.Join(dir, ".breathes.yaml"), "ci: [not a bool\n")

	_, _, err := Load(dir, "")
	assert.ErrorContains(t, err, "parse config")
}
