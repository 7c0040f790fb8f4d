// Package ecosystem defines the closed set of language and build-tool
// ecosystems breathes knows about, and the marker files that reveal them.
package ecosystem

import (
	"golang.org/x/text/cases"
)

// Ecosystem identifies a language or build-tool family.
type Ecosystem int

const (
	Unknown Ecosystem = iota
	R
	Javascript
	Typescript
	Haskell
	D
	Rust
	Python
	Go
	Php
	Ruby
	CMake
	CSharp
	Maven
	Kotlin
	Gradle
	Swift
	Dart
	Elixir
)

var names = [...]string{
	Unknown:    "Unknown",
	R:          "R",
	Javascript: "Javascript",
	Typescript: "Typescript",
	Haskell:    "Haskell",
	D:          "D",
	Rust:       "Rust",
	Python:     "Python",
	Go:         "Go",
	Php:        "Php",
	Ruby:       "Ruby",
	CMake:      "CMake",
	CSharp:     "CSharp",
	Maven:      "Maven",
	Kotlin:     "Kotlin",
	Gradle:     "Gradle",
	Swift:      "Swift",
	Dart:       "Dart",
	Elixir:     "Elixir",
}

// String returns the display name. It doubles as the per-ecosystem log
// directory name.
func (e Ecosystem) String() string {
	if e < 0 || int(e) >= len(names) {
		return names[Unknown]
	}
	return names[e]
}

// MarshalText encodes the ecosystem by name.
func (e Ecosystem) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// All returns every ecosystem tag, Unknown included, in declaration order.
func All() []Ecosystem {
	all := make([]Ecosystem, len(names))
	for i := range names {
		all[i] = Ecosystem(i)
	}
	return all
}

// Parse maps a name such as "typescript" or "CSharp" to its tag.
// Unrecognized names yield Unknown.
func Parse(name string) Ecosystem {
	fold := cases.Fold()
	want := fold.String(name)
	for i, n := range names {
		if fold.String(n) == want {
			return Ecosystem(i)
		}
	}
	return Unknown
}
