package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/dkoosis/breathes/internal/theme"
)

// Defaults.
const (
	DefaultLogDir = "breathes"
	DefaultFormat = "auto"
	DefaultTheme  = "default"
)

// Formats accepted for the report.
var Formats = []string{"auto", "terminal", "plain", "json"}

// Flags holds command-line values. The *Set fields record whether the user
// passed the flag explicitly.
type Flags struct {
	LogDir   string
	Format   string
	Theme    string
	DebugLog string
	NoColor  bool
	CI       bool
	Debug    bool
	Clear    bool

	NoColorSet bool
	CISet      bool
	DebugSet   bool
	ClearSet   bool
}

// Resolved is the effective configuration.
type Resolved struct {
	LogDir      string
	Format      string
	Theme       string
	DebugLog    string
	Shell       string
	NoColor     bool
	CI          bool
	Debug       bool
	ClearScreen bool

	// Where each value came from: "cli", "env", "file" or "default".
	ThemeSource   string
	NoColorSource string
	CISource      string
}

// Resolve applies CLI > environment > file > defaults.
// CI mode implies NoColor.
func Resolve(flags Flags, file File) (*Resolved, error) {
	r := &Resolved{
		LogDir:        DefaultLogDir,
		Format:        DefaultFormat,
		Theme:         DefaultTheme,
		ThemeSource:   "default",
		NoColorSource: "file",
		CISource:      "file",

		DebugLog:    file.DebugLog,
		Shell:       file.Shell,
		NoColor:     file.NoColor,
		CI:          file.CI,
		Debug:       file.Debug,
		ClearScreen: file.ClearScreen,
	}
	if file.LogDir != "" {
		r.LogDir = file.LogDir
	}
	if file.Format != "" {
		r.Format = file.Format
	}
	if file.Theme != "" {
		r.Theme, r.ThemeSource = file.Theme, "file"
	}

	if v := os.Getenv("BREATHES_LOG_DIR"); v != "" {
		r.LogDir = v
	}
	if v := os.Getenv("BREATHES_THEME"); v != "" {
		r.Theme, r.ThemeSource = v, "env"
	}
	if b := getEnvBool("BREATHES_NO_COLOR", "NO_COLOR"); b != nil {
		r.NoColor, r.NoColorSource = *b, "env"
	}
	if b := getEnvBool("BREATHES_CI", "CI"); b != nil {
		r.CI, r.CISource = *b, "env"
	}
	if os.Getenv("BREATHES_DEBUG") != "" {
		r.Debug = true
	}

	if flags.LogDir != "" {
		r.LogDir = flags.LogDir
	}
	if flags.Format != "" {
		r.Format = flags.Format
	}
	if flags.Theme != "" {
		r.Theme, r.ThemeSource = flags.Theme, "cli"
	}
	if flags.DebugLog != "" {
		r.DebugLog = flags.DebugLog
	}
	if flags.NoColorSet {
		r.NoColor, r.NoColorSource = flags.NoColor, "cli"
	}
	if flags.CISet {
		r.CI, r.CISource = flags.CI, "cli"
	}
	if flags.DebugSet {
		r.Debug = flags.Debug
	}
	if flags.ClearSet {
		r.ClearScreen = flags.Clear
	}

	if r.CI {
		r.NoColor = true
	}
	r.Format = strings.ToLower(r.Format)
	r.Theme = strings.ToLower(r.Theme)

	if err := validate(r); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return r, nil
}

// ThemeValue returns the theme to render with: mono whenever colour is off.
func (r *Resolved) ThemeValue() theme.Theme {
	if r.NoColor {
		return theme.Mono()
	}
	return theme.ByName(r.Theme)
}

// getEnvBool reads the first parseable boolean among keys. Nil means unset.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

func validate(r *Resolved) error {
	if !slices.Contains(Formats, r.Format) {
		return fmt.Errorf("invalid format %q (must be one of: %s)", r.Format, strings.Join(Formats, ", "))
	}
	if !slices.Contains(theme.Names(), r.Theme) {
		return fmt.Errorf("invalid theme %q (must be one of: %s)", r.Theme, strings.Join(theme.Names(), ", "))
	}
	if strings.TrimSpace(r.LogDir) == "" {
		return fmt.Errorf("log_dir cannot be empty")
	}
	return nil
}
