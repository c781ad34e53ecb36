// Package textview carries the library version. The view itself lives in
// package view.
package textview

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"

	"github.com/iw2rmb/textview/view"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the library version string in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// VersionCore splits the major.minor.patch core out of a SemVer string,
// ignoring pre-release and build suffixes.
func VersionCore(v string) (major, minor, patch int, ok bool) {
	if !IsSemver(v) {
		return 0, 0, 0, false
	}
	s := view.FromString(strings.TrimSpace(v))
	if i := s.FindFirstOf(view.FromString("-+"), 0); i != view.NPos {
		s, _ = s.Substr(0, i)
	}

	dot := view.FromString(".")
	var parts [3]int
	for i := range parts {
		var field view.Bytes
		field, s, _ = s.Cut(dot)
		n, err := strconv.Atoi(field.String())
		if err != nil {
			return 0, 0, 0, false
		}
		parts[i] = n
	}
	return parts[0], parts[1], parts[2], true
}
