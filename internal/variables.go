package internal

import (
	"fmt"
	"runtime"
	"strings"
)

// Tool name used for logging groups, config paths, and container names.
const Name = "zmkbuild"

const (

	// String to indicate an undefined variable
	defaultUndefined = "(undefined)"

	// String to indicate a local (non-release) build
	defaultLocalBuild = "(dev)"
)

var (
	version   = "" // Version number (e.g., "1.2.3")
	gitCommit = "" // Git commit hash (e.g., "a1b2c3d4")
	buildDate = "" // Build timestamp (e.g., "2026-08-21T10:04:00Z")

	rawQuiet   = "false" // Whether to enable quiet mode
	rawDebug   = "false" // Whether to enable debug mode
	rawVerbose = "false" // Whether to enable verbose logging
)

// Returns the current version.
//
// If the version is not set, returns "(undefined)". A "v" or "V" prefix
// (e.g., "v1.0.0") is stripped.
func Version() string {
	v := strings.TrimSpace(version)
	if v == "" {
		return defaultUndefined
	}

	v = strings.ToLower(v)
	v = strings.TrimPrefix(v, "v")

	return v
}

// Returns the git commit hash, or "(undefined)" when not set.
func GitCommit() string {
	c := strings.TrimSpace(gitCommit)
	if c == "" {
		return defaultUndefined
	}
	return c
}

// Returns the build timestamp, or "(undefined)" when not set.
func BuildDate() string {
	d := strings.TrimSpace(buildDate)
	if d == "" {
		return defaultUndefined
	}
	return d
}

// Returns the build architecture.
func Arch() string {
	return runtime.GOARCH
}

// Returns true if this is a local (non-release) build.
//
// A build is considered local if any of the version, git commit, or build
// date variables are unset. Release builds should set all three via linker
// flags.
func IsLocal() bool {
	return strings.TrimSpace(version) == "" ||
		strings.TrimSpace(gitCommit) == "" ||
		strings.TrimSpace(buildDate) == ""
}

// Returns a detailed version string.
//
// If this is a local build, returns "(dev)". Otherwise, returns a string
// formatted as "<version> <git-commit> <date> [<arch>]".
func VersionString() string {
	if IsLocal() {
		return defaultLocalBuild
	}

	return fmt.Sprintf("%s %s %s [%s]", Version(), GitCommit(), BuildDate(), Arch())
}
