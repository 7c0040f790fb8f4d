// Package detect inspects a project root to determine which ecosystems are present.
package detect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dkoosis/breathes/pkg/ecosystem"
)

// Matcher reports whether a marker is present at the root of fsys.
type Matcher interface {
	Matches(fsys fs.FS) (bool, error)
}

// MatcherFor picks a strategy from the pattern's shape: anything carrying a
// glob metacharacter is globbed, everything else is an exact file name.
func MatcherFor(pattern string) Matcher {
	if strings.ContainsAny(pattern, "*?[{") {
		return globMatcher{pattern: pattern}
	}
	return exactMatcher{name: pattern}
}

type exactMatcher struct {
	name string
}

func (m exactMatcher) Matches(fsys fs.FS) (bool, error) {
	info, err := fs.Stat(fsys, m.name)
	if err != nil {
		// Unreadable markers count as absent; only a bad root is fatal.
		return false, nil
	}
	return !info.IsDir(), nil
}

type globMatcher struct {
	pattern string
}

func (m globMatcher) Matches(fsys fs.FS) (bool, error) {
	matches, err := doublestar.Glob(fsys, m.pattern, doublestar.WithFilesOnly())
	if err != nil {
		return false, fmt.Errorf("glob %q: %w", m.pattern, err)
	}
	return len(matches) > 0, nil
}

// Detect returns the ecosystems whose marker is present directly under root,
// in registry order. The filesystem is read fresh on every call.
func Detect(root string) ([]ecosystem.Ecosystem, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("detect: %s is not a directory", root)
	}
	return DetectFS(os.DirFS(root))
}

// DetectFS is Detect over an arbitrary filesystem rooted at the project.
func DetectFS(fsys fs.FS) ([]ecosystem.Ecosystem, error) {
	var found []ecosystem.Ecosystem
	for _, m := range ecosystem.Markers() {
		if m.Pattern == "" {
			continue
		}
		ok, err := MatcherFor(m.Pattern).Matches(fsys)
		if err != nil {
			if errors.Is(err, doublestar.ErrBadPattern) {
				return nil, fmt.Errorf("detect %s: %w", m.Ecosystem, err)
			}
			continue
		}
		if ok {
			found = append(found, m.Ecosystem)
		}
	}
	return found, nil
}
