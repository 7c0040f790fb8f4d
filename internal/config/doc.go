// Package config handles configuration loading and merging for breathes.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--log-dir, --format, --theme, --no-color, --ci, --debug, --clear)
//  2. Environment variables (BREATHES_LOG_DIR, BREATHES_THEME, BREATHES_NO_COLOR
//     or NO_COLOR, BREATHES_CI or CI, BREATHES_DEBUG)
//  3. Config file (.breathes.yaml, .breathes.yml or .breathes.toml in the
//     project directory, else ~/.config/breathes/config.yaml)
//  4. Hardcoded defaults
//
// # CI Mode
//
// When CI mode is enabled colors are disabled and the progress spinner is
// replaced by plain outcome lines.
//
// # Keys
//
//	log_dir: breathes      # hook log root, relative to the project
//	format: auto           # auto, terminal, plain or json
//	theme: default         # default, orca or mono
//	no_color: false
//	ci: false
//	debug: false
//	debug_log: ""          # rotated JSON diagnostic log
//	shell: ""              # defaults to sh from PATH
//	clear_screen: false
package config
