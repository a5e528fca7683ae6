// Package filterpad hosts a pattern editor for traffic filters.
//
// The editor itself lives in the patterneditor package; the filter package
// holds the Filter value and its host-side state holder.
package filterpad

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// semverRE matches SemVer 2.0.0 without a leading `v`.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version is the build version from the embedded VERSION file.
func Version() string { return strings.TrimSpace(embeddedVersion) }

// VersionTag is Version as a git tag.
func VersionTag() string { return Tag(Version()) }

// Tag prefixes v with `v` unless it already has one.
func Tag(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// IsSemver reports whether v is a SemVer 2.0.0 version. A `v` prefix is not
// part of SemVer and fails the check.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
