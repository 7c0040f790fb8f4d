package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration. Every key is optional.
type File struct {
	LogDir      string `yaml:"log_dir" toml:"log_dir"`
	Format      string `yaml:"format" toml:"format"`
	Theme       string `yaml:"theme" toml:"theme"`
	NoColor     bool   `yaml:"no_color" toml:"no_color"`
	CI          bool   `yaml:"ci" toml:"ci"`
	Debug       bool   `yaml:"debug" toml:"debug"`
	DebugLog    string `yaml:"debug_log" toml:"debug_log"`
	Shell       string `yaml:"shell" toml:"shell"`
	ClearScreen bool   `yaml:"clear_screen" toml:"clear_screen"`
}

// localNames are tried in order inside the project directory.
var localNames = []string{".breathes.yaml", ".breathes.yml", ".breathes.toml"}

// Load reads the configuration file. An explicit path must exist; otherwise
// the project directory is searched first, then the user config directory.
// Finding no file is not an error. The returned path is "" in that case.
func Load(projectDir, explicit string) (File, string, error) {
	path := explicit
	if path == "" {
		path = findConfig(projectDir)
		if path == "" {
			return File{}, "", nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, path, fmt.Errorf("read config: %w", err)
	}

	var f File
	if err := decode(path, data, &f); err != nil {
		return File{}, path, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f, path, nil
}

func decode(path string, data []byte, f *File) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, f)
	default:
		return yaml.Unmarshal(data, f)
	}
}

// findConfig returns the first existing config file, or "".
func findConfig(projectDir string) string {
	for _, name := range localNames {
		p := filepath.Join(projectDir, name)
		if isFile(p) {
			return p
		}
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.toml"} {
		p := filepath.Join(configHome, "breathes", name)
		if isFile(p) {
			return p
		}
	}
	return ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
