package hook

import (
	"slices"

	eco "github.com/dkoosis/breathes/pkg/ecosystem"
)

const (
	noVulns    = "No vulnerabilities found"
	vulnsFound = "Vulnerabilities found"
	auditDesc  = "Checking for security vulnerabilities"
	testsOK    = "Tests passed"
	testsKO    = "Tests failed"
	buildOK    = "Build successful"
	buildKO    = "Build failed"
	formatDesc = "Checking for code formatting"
	formatOK   = "Code formatting is correct"
	formatKO   = "Code formatting issues found"
	outdated   = "Checking for outdated packages in your project"
	noOutdated = "No outdated packages found"
	isOutdated = "Outdated packages found"
)

// Fields: Ecosystem, Description, Success, Failure, LogFile, Command.

var rustHooks = []Hook{
	{eco.Rust, "Checking the configuration", "Project is valid", "Project not valid", "project.log", "cargo verify-project"},
	{eco.Rust, "Checking build capability", "Can build the project", "Cargo check detect failure", "check.log", "cargo check"},
	{eco.Rust, auditDesc, noVulns, vulnsFound, "audit.log", "cargo audit"},
	{eco.Rust, "Checks for formatting issues in your Rust code", "Code format standard respected", "Code format standard not respected", "fmt.log", "cargo fmt --check"},
	{eco.Rust, "Checks for linting issues and suggests code improvements", "No warning found", "Warnings found", "clippy.log",
		"cargo clippy -- -D clippy::all -W warnings -D clippy::pedantic -D clippy::nursery -A clippy::multiple_crate_versions"},
	{eco.Rust, "Testing your project", testsOK, testsKO, "test.log", "cargo test --no-fail-fast"},
	{eco.Rust, "Generating documentation for your project", "Documentation generated", "Failed to generate documentation", "doc.log", "cargo doc --no-deps --document-private-items"},
	{eco.Rust, outdated, noOutdated, isOutdated, "outdated.log", "cargo outdated"},
}

var javascriptHooks = []Hook{
	{eco.Javascript, outdated, noOutdated, isOutdated, "outdated.log", "npm outdated"},
	{eco.Javascript, "Testing your project", testsOK, testsKO, "test.log", "npm run test"},
	{eco.Javascript, "Auditing your project", noVulns, vulnsFound, "audit.log", "npm audit"},
	{eco.Javascript, "Linting your project", "Linting passed", "Lint errors found", "lint.log", "npm run lint"},
}

// typescriptExtras run after the inherited Javascript sequence.
var typescriptExtras = []Hook{
	{eco.Typescript, "Checking types in your project", "Types are valid", "Type errors found", "types.log", "npx tsc --noEmit"},
	{eco.Typescript, "Checking for code formatting in your project", formatOK, formatKO, "fmt.log", "npx prettier --check ."},
}

var haskellHooks = []Hook{
	{eco.Haskell, outdated, noOutdated, isOutdated, "outdated.log", "cabal outdated"},
	{eco.Haskell, auditDesc, noVulns, vulnsFound, "audit.log", "cabal audit"},
	{eco.Haskell, "Running tests for your Haskell project", testsOK, testsKO, "test.log", "cabal test"},
}

var dHooks = []Hook{
	{eco.D, "Building your project", buildOK, buildKO, "build.log", "dub build"},
	{eco.D, "Testing your project", testsOK, testsKO, "test.log", "dub test"},
}

var mavenHooks = []Hook{
	{eco.Maven, "Resolving the dependency tree", "Dependency tree resolved", "Dependency tree unresolved", "tree.log", "mvn dependency:tree"},
	{eco.Maven, auditDesc, noVulns, vulnsFound, "audit.log", "mvn dependency-check:check"},
	{eco.Maven, "Running tests for your Maven project", testsOK, testsKO, "test.log", "mvn test"},
	{eco.Maven, outdated, noOutdated, isOutdated, "outdated.log", "mvn versions:display-dependency-updates"},
}

var gradleHooks = []Hook{
	{eco.Gradle, "Checking for outdated dependencies", "No outdated dependencies found", "Outdated dependencies found", "outdated.log", "gradle dependencyUpdates"},
	{eco.Gradle, auditDesc, noVulns, vulnsFound, "audit.log", "gradle dependencyCheckAnalyze"},
	{eco.Gradle, "Running tests for your Gradle project", testsOK, testsKO, "test.log", "gradle test"},
}

var pythonHooks = []Hook{
	{eco.Python, outdated, noOutdated, isOutdated, "outdated.log", "pip list --outdated"},
	{eco.Python, auditDesc, noVulns, vulnsFound, "audit.log", "pip audit"},
}

var goHooks = []Hook{
	{eco.Go, "Testing your project", testsOK, testsKO, "test.log", "go test -v ./..."},
	{eco.Go, auditDesc, noVulns, vulnsFound, "audit.log", "go list -u -m -json all"},
}

var phpHooks = []Hook{
	{eco.Php, "Checking platform requirements", "All requirements are met", "Missing requirements found", "reqs.log", "composer check-platform-reqs"},
	{eco.Php, auditDesc, noVulns, vulnsFound, "audit.log", "composer audit"},
	{eco.Php, "Checking outdated packages", noOutdated, isOutdated, "outdated.log", "composer outdated"},
	{eco.Php, "Running tests for your PHP project", testsOK, testsKO, "test.log", "composer run test"},
}

var rubyHooks = []Hook{
	{eco.Ruby, "Checking for outdated gems", "No outdated gems found", "Outdated gems found", "outdated.log", "bundle outdated"},
	{eco.Ruby, auditDesc, noVulns, vulnsFound, "audit.log", "bundle audit"},
	{eco.Ruby, "Running tests for your Ruby project", testsOK, testsKO, "test.log", "bundle exec rspec"},
}

var cmakeHooks = []Hook{
	{eco.CMake, "Generating the Makefile", "Makefile generated", "Makefile generation failed", "cmake.log", "cmake ."},
	{eco.CMake, "Building", buildOK, buildKO, "make.log", "make"},
	{eco.CMake, "Testing", testsOK, testsKO, "test.log", "make test"},
}

var csharpHooks = []Hook{
	{eco.CSharp, formatDesc, formatOK, formatKO, "format.log", "dotnet format --verify-no-changes"},
	{eco.CSharp, "Running unit tests", "All tests passed", "Some tests failed", "test.log", "dotnet test"},
	{eco.CSharp, "Building the project", buildOK, buildKO, "build.log", "dotnet build"},
	{eco.CSharp, "Checking for dependency updates", "Dependencies are up to date", "Dependency updates available", "deps.log", "dotnet restore"},
	{eco.CSharp, auditDesc, noVulns, vulnsFound, "audit.log", "dotnet audit"},
}

var swiftHooks = []Hook{
	{eco.Swift, formatDesc, formatOK, formatKO, "format.log", "swiftformat --lint ."},
	{eco.Swift, "Running unit tests", "All tests passed", "Some tests failed", "test.log", "swift test"},
	{eco.Swift, auditDesc, noVulns, vulnsFound, "audit.log", "swift package audit"},
	{eco.Swift, "Building the project", buildOK, buildKO, "build.log", "swift build"},
	{eco.Swift, "Running integration tests", "All integration tests passed", "Some integration tests failed", "integration.log", "swift test --parallel"},
}

var dartHooks = []Hook{
	{eco.Dart, formatDesc, formatOK, formatKO, "format.log", "dart format --set-exit-if-changed ."},
	{eco.Dart, "Running unit tests", "All tests passed", "Some tests failed", "test.log", "dart test"},
	{eco.Dart, auditDesc, noVulns, vulnsFound, "audit.log", "dart pub audit"},
	{eco.Dart, "Building the project", buildOK, buildKO, "build.log", "dart compile exe bin/main.dart"},
}

var elixirHooks = []Hook{
	{eco.Elixir, formatDesc, formatOK, formatKO, "format.log", "mix format --check-formatted"},
	{eco.Elixir, "Running unit tests", "All tests passed", "Some tests failed", "test.log", "mix test"},
	{eco.Elixir, "Generating documentation", "Documentation generated", "Documentation generation failed", "docs.log", "mix docs"},
	{eco.Elixir, auditDesc, noVulns, vulnsFound, "audit.log", "mix audit"},
	{eco.Elixir, "Building the project", buildOK, buildKO, "build.log", "mix compile"},
}

// Kotlin is registered for detection but has no hooks yet.
var defaultTable = table{
	eco.Rust:       rustHooks,
	eco.Javascript: javascriptHooks,
	eco.Typescript: slices.Concat(javascriptHooks, typescriptExtras),
	eco.Haskell:    haskellHooks,
	eco.D:          dHooks,
	eco.Maven:      mavenHooks,
	eco.Gradle:     gradleHooks,
	eco.Python:     pythonHooks,
	eco.Go:         goHooks,
	eco.Php:        phpHooks,
	eco.Ruby:       rubyHooks,
	eco.CMake:      cmakeHooks,
	eco.CSharp:     csharpHooks,
	eco.Swift:      swiftHooks,
	eco.Dart:       dartHooks,
	eco.Elixir:     elixirHooks,
}
