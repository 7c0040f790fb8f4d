package ecosystem

// Marker ties one ecosystem to the file name or glob whose presence at a
// project root signals it.
type Marker struct {
	Ecosystem Ecosystem
	Pattern   string
}

// registry order drives detection order, and with it the order in which
// ecosystems are verified and reported.
var registry = [...]Marker{
	{Rust, "Cargo.toml"},
	{Typescript, "tsconfig.json"},
	{Haskell, "*.cabal"},
	{D, "dub.json"},
	{Javascript, "package.json"},
	{CSharp, "*.csproj"},
	{Maven, "pom.xml"},
	{Go, "go.mod"},
	{Ruby, "Gemfile"},
	{Dart, "pubspec.yaml"},
	{Gradle, "build.gradle"},
	{Kotlin, "build.gradle.kts"},
	{Swift, "Package.swift"},
	{Php, "composer.json"},
	{CMake, "CMakeLists.txt"},
	{Elixir, "mix.exs"},
	{Python, "requirements.txt"},
}

// Markers returns a copy of the registry in declaration order.
func Markers() []Marker {
	out := make([]Marker, len(registry))
	copy(out, registry[:])
	return out
}

// MarkerFor returns the pattern registered for e. Unknown and R have none.
func MarkerFor(e Ecosystem) (string, bool) {
	for _, m := range registry {
		if m.Ecosystem == e {
			return m.Pattern, true
		}
	}
	return "", false
}
