package verprompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ReleaseType names a kind of version increment.
type ReleaseType string

const (
	ReleaseBuild      ReleaseType = "build"
	ReleaseMajor      ReleaseType = "major"
	ReleaseMinor      ReleaseType = "minor"
	ReleasePatch      ReleaseType = "patch"
	ReleasePremajor   ReleaseType = "premajor"
	ReleasePreminor   ReleaseType = "preminor"
	ReleasePrepatch   ReleaseType = "prepatch"
	ReleasePrerelease ReleaseType = "prerelease"
)

// ErrUnknownReleaseType is returned by Increment for a release type it does not support.
var ErrUnknownReleaseType = errors.New("unknown release type")

// IsPrerelease reports whether rt produces a prerelease version.
func (rt ReleaseType) IsPrerelease() bool {
	return strings.HasPrefix(string(rt), "pre")
}

// Increment returns the version that follows version for the given release type.
//
//   - build returns version unchanged.
//   - major, minor and patch zero the lower components and drop any prerelease
//     tag. A prerelease that already targets the component is promoted
//     without bumping it (1.2.0-rc.1 -> minor -> 1.2.0).
//   - premajor, preminor and prepatch bump the component and start
//     "<channel>.0" ("0" without a channel).
//   - prerelease starts "<channel>.0" on the next patch when version is a
//     production release, otherwise it bumps the last numeric identifier, or
//     resets to "<channel>.0" when moving to a different channel.
func Increment(version string, rt ReleaseType, channel string) (string, error) {
	if rt == ReleaseBuild {
		return version, nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return "", fmt.Errorf("parsing version %q: %w", version, err)
	}
	major, minor, patch := v.Major(), v.Minor(), v.Patch()
	pre := splitIdentifiers(v.Prerelease())

	switch rt {
	case ReleaseMajor:
		if minor != 0 || patch != 0 || len(pre) == 0 {
			major++
		}
		minor, patch, pre = 0, 0, nil
	case ReleaseMinor:
		if patch != 0 || len(pre) == 0 {
			minor++
		}
		patch, pre = 0, nil
	case ReleasePatch:
		if len(pre) == 0 {
			patch++
		}
		pre = nil
	case ReleasePremajor:
		major, minor, patch = major+1, 0, 0
		pre = startPrerelease(channel)
	case ReleasePreminor:
		minor, patch = minor+1, 0
		pre = startPrerelease(channel)
	case ReleasePrepatch:
		patch++
		pre = startPrerelease(channel)
	case ReleasePrerelease:
		if len(pre) == 0 {
			patch++
			pre = startPrerelease(channel)
		} else {
			pre = nextPrerelease(pre, channel)
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownReleaseType, rt)
	}

	return semver.New(major, minor, patch, strings.Join(pre, "."), "").String(), nil
}

func startPrerelease(channel string) []string {
	if channel == "" {
		return []string{"0"}
	}
	return []string{channel, "0"}
}

// nextPrerelease bumps the last numeric identifier of pre, appending a zero
// when there is none, then applies the channel.
func nextPrerelease(pre []string, channel string) []string {
	next := append([]string(nil), pre...)
	bumped := false
	for i := len(next) - 1; i >= 0; i-- {
		if n, err := strconv.ParseUint(next[i], 10, 64); err == nil {
			next[i] = strconv.FormatUint(n+1, 10)
			bumped = true
			break
		}
	}
	if !bumped {
		next = append(next, "0")
	}

	if channel == "" {
		return next
	}
	if next[0] != channel || len(next) < 2 || !isNumeric(next[1]) {
		return startPrerelease(channel)
	}
	return next
}

// Diff classifies the change from oldVersion to newVersion. Both production
// releases yield major, minor or patch; when either is a prerelease the result
// is premajor, preminor, prepatch or prerelease. Equal versions yield "".
func Diff(oldVersion, newVersion string) (ReleaseType, error) {
	a, err := semver.NewVersion(oldVersion)
	if err != nil {
		return "", fmt.Errorf("parsing version %q: %w", oldVersion, err)
	}
	b, err := semver.NewVersion(newVersion)
	if err != nil {
		return "", fmt.Errorf("parsing version %q: %w", newVersion, err)
	}
	if a.Equal(b) {
		return "", nil
	}

	prefix := ""
	if a.Prerelease() != "" || b.Prerelease() != "" {
		prefix = "pre"
	}
	switch {
	case a.Major() != b.Major():
		return ReleaseType(prefix + string(ReleaseMajor)), nil
	case a.Minor() != b.Minor():
		return ReleaseType(prefix + string(ReleaseMinor)), nil
	case a.Patch() != b.Patch():
		return ReleaseType(prefix + string(ReleasePatch)), nil
	}
	return ReleasePrerelease, nil
}
