package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Resolve reads so the host CI cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BREATHES_LOG_DIR", "BREATHES_THEME", "BREATHES_NO_COLOR", "NO_COLOR",
		"BREATHES_CI", "CI", "BREATHES_DEBUG",
	} {
		t.Setenv(k, "")
	}
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)
	r, err := Resolve(Flags{}, File{})
	require.NoError(t, err)

	assert.Equal(t, DefaultLogDir, r.LogDir)
	assert.Equal(t, "auto", r.Format)
	assert.Equal(t, "default", r.Theme)
	assert.Equal(t, "default", r.ThemeSource)
	assert.False(t, r.NoColor)
	assert.False(t, r.CI)
	assert.False(t, r.Debug)
}

func TestResolve_PriorityOrder(t *testing.T) {
	tests := []struct {
		name       string
		flags      Flags
		file       File
		env        map[string]string
		wantTheme  string
		wantSource string
		wantLogDir string
	}{
		{
			name:       "file over default",
			file:       File{Theme: "orca", LogDir: "from-file"},
			wantTheme:  "orca",
			wantSource: "file",
			wantLogDir: "from-file",
		},
		{
			name:       "env over file",
			file:       File{Theme: "orca", LogDir: "from-file"},
			env:        map[string]string{"BREATHES_THEME": "mono", "BREATHES_LOG_DIR": "from-env"},
			wantTheme:  "mono",
			wantSource: "env",
			wantLogDir: "from-env",
		},
		{
			name:       "cli over env",
			flags:      Flags{Theme: "default", LogDir: "from-cli"},
			env:        map[string]string{"BREATHES_THEME": "mono", "BREATHES_LOG_DIR": "from-env"},
			wantTheme:  "default",
			wantSource: "cli",
			wantLogDir: "from-cli",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			r, err := Resolve(tt.flags, tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTheme, r.Theme)
			assert.Equal(t, tt.wantSource, r.ThemeSource)
			assert.Equal(t, tt.wantLogDir, r.LogDir)
		})
	}
}

func TestResolve_NoColor(t *testing.T) {
	clearEnv(t)
	t.Setenv("NO_COLOR", "1")
	r, err := Resolve(Flags{}, File{})
	require.NoError(t, err)
	assert.True(t, r.NoColor)
	assert.Equal(t, "env", r.NoColorSource)
	assert.Equal(t, "mono", r.ThemeValue().Name)

	r, err = Resolve(Flags{NoColor: false, NoColorSet: true}, File{})
	require.NoError(t, err)
	assert.False(t, r.NoColor)
	assert.Equal(t, "cli", r.NoColorSource)
}

func TestResolve_CIImpliesNoColor(t *testing.T) {
	clearEnv(t)
	t.Setenv("CI", "true")
	r, err := Resolve(Flags{}, File{Theme: "orca"})
	require.NoError(t, err)
	assert.True(t, r.CI)
	assert.True(t, r.NoColor)
	assert.Equal(t, "mono", r.ThemeValue().Name)
}

func TestResolve_UnparseableEnvIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("BREATHES_CI", "maybe")
	r, err := Resolve(Flags{}, File{CI: true})
	require.NoError(t, err)
	assert.True(t, r.CI)
	assert.Equal(t, "file", r.CISource)
}

func TestResolve_DebugFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BREATHES_DEBUG", "yes")
	r, err := Resolve(Flags{}, File{})
	require.NoError(t, err)
	assert.True(t, r.Debug)

	r, err = Resolve(Flags{Debug: false, DebugSet: true}, File{})
	require.NoError(t, err)
	assert.False(t, r.Debug)
}

func TestResolve_Validation(t *testing.T) {
	clearEnv(t)
	_, err := Resolve(Flags{Format: "xml"}, File{})
	assert.ErrorContains(t, err, "invalid format")

	_, err = Resolve(Flags{}, File{Theme: "neon"})
	assert.ErrorContains(t, err, "invalid theme")

	r, err := Resolve(Flags{Format: "JSON"}, File{})
	require.NoError(t, err)
	assert.Equal(t, "json", r.Format)
}

func TestResolve_ClearScreen(t *testing.T) {
	clearEnv(t)
	r, err := Resolve(Flags{}, File{ClearScreen: true})
	require.NoError(t, err)
	assert.True(t, r.ClearScreen)

	r, err = Resolve(Flags{Clear: false, ClearSet: true}, File{ClearScreen: true})
	require.NoError(t, err)
	assert.False(t, r.ClearScreen)
}
