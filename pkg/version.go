package verprompt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is the parsed form of a version string.
// A Version with an empty PrereleaseTag is a production release.
type Version struct {
	Major         int
	Minor         int
	Patch         int
	PrereleaseTag string
}

// Channel describes a prerelease channel such as "alpha".
type Channel struct {
	Name        string
	Description string
}

// Channels lists the prerelease channels, ordered chronologically.
// A prerelease may only move to the same channel or a later one.
var Channels = []Channel{
	{Name: "alpha", Description: "just proof of concept/exploration level."},
	{Name: "beta", Description: "API changes not expected but still possible. No known show-stopper bugs."},
	{Name: "rc", Description: "release-candidate. API frozen. No known show-stopper bugs."},
}

// components are the version number components as they are read (major.minor.patch).
var components = []ReleaseType{ReleaseMajor, ReleaseMinor, ReleasePatch}

var (
	numbersPattern    = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)`)
	prereleasePattern = regexp.MustCompile(`-(\w*\.?\d*)`)
	channelPattern    = regexp.MustCompile(`\w+`)
)

// Parse splits a version string into its numeric components and the optional
// prerelease tag. It never fails: components it cannot read are left at zero
// and a missing tag is left empty.
func Parse(version string) Version {
	var v Version
	if m := numbersPattern.FindStringSubmatch(version); m != nil {
		v.Major, _ = strconv.Atoi(m[1])
		v.Minor, _ = strconv.Atoi(m[2])
		v.Patch, _ = strconv.Atoi(m[3])
	}
	if m := prereleasePattern.FindStringSubmatch(version); m != nil {
		v.PrereleaseTag = m[1]
	}
	return v
}

// StripPrereleaseTag renders version as "major.minor.patch".
func StripPrereleaseTag(version string) string {
	return Parse(version).Production()
}

// Production returns the version without its prerelease tag.
func (v Version) Production() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// String renders the version, including the prerelease tag when present.
func (v Version) String() string {
	if v.PrereleaseTag == "" {
		return v.Production()
	}
	return v.Production() + "-" + v.PrereleaseTag
}

// IsPrerelease reports whether v carries a prerelease tag.
func (v Version) IsPrerelease() bool {
	return v.PrereleaseTag != ""
}

// Channel returns the channel part of the prerelease tag ("alpha" for
// "alpha.3"), or "" for a production release.
func (v Version) Channel() string {
	return channelPattern.FindString(v.PrereleaseTag)
}

// Target returns the least significant non-zero component, which is the
// production release a prerelease is building toward. For 2.0.0-alpha.2 that
// is major, for 2.1.0-alpha.0 minor. A version with every component at zero
// has no target and returns "".
func (v Version) Target() ReleaseType {
	switch {
	case v.Patch != 0:
		return ReleasePatch
	case v.Minor != 0:
		return ReleaseMinor
	case v.Major != 0:
		return ReleaseMajor
	}
	return ""
}

// channelRank returns the position of name in Channels, or -1.
func channelRank(name string) int {
	for i, c := range Channels {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// componentIndex returns the position of rt in major, minor, patch, or -1.
func componentIndex(rt ReleaseType) int {
	for i, c := range components {
		if c == rt {
			return i
		}
	}
	return -1
}

// isNumeric reports whether s is a numeric prerelease identifier.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

func splitIdentifiers(prerelease string) []string {
	if prerelease == "" {
		return nil
	}
	return strings.Split(prerelease, ".")
}
