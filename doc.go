// Package main implements the verprompt CLI tool.
//
// The verprompt tool is a command-line interface that helps choose the next semantic version
// of a package. Given the current version, it asks which kind of release is being made and
// prints the resulting version on stdout. Questions and log messages go to stderr, so the
// output can be captured by scripts.
//
// The questions follow the prerelease lifecycle alpha -> beta -> rc -> production:
//
//   - For a production release (e.g. 2.0.0) the choices are build, patch, minor and major.
//     Picking patch, minor or major is followed by a second question asking whether the
//     release is a prerelease, and if so in which channel (alpha, beta or rc).
//   - For a prerelease (e.g. 2.0.0-alpha.2) the choices are build, staying in the current
//     channel, moving up to a later channel, going to production with the version being
//     prepared, and plain bumps of any component coarser than the one being prepared.
//
// A build re-release keeps the version unchanged and logs a warning, since build-only
// re-releases are not versioned separately.
//
// Command Usage:
//
//	verprompt [flags] <current-version>
//	verprompt choices [flags] <current-version>
//
// Flags:
//
//	--format, -t:  Output format: text (the new version only), json or yaml (old version,
//	               new version and release type). Defaults to "text". Env: VERPROMPT_FORMAT.
//	--log-level:   One of debug, info, warn, error. Defaults to "warn". Env: VERPROMPT_LOG_LEVEL.
//	--config:      Path to a YAML config file providing defaults for format and logLevel.
//	               Defaults to ./.verprompt.yaml when that file exists. Env: VERPROMPT_CONFIG.
//	--select, -s:  Answer the questions without prompting, one shortcode (build, patch, minor,
//	               major, alpha, beta, rc, no) or 1-based number per question. May be repeated.
//	--version:     Displays the version of the verprompt CLI tool and exits.
//
// Examples:
//
//	# Choose interactively from the current version
//	verprompt 2.0.0
//
//	# Start a minor prerelease without prompting (2.0.0 -> 2.1.0-alpha.0)
//	verprompt --select minor --select alpha 2.0.0
//
//	# Promote a release candidate to production (2.1.0-rc.10 -> 2.1.0)
//	verprompt --select minor 2.1.0-rc.10
//
//	# Print the result as JSON
//	verprompt --format json 2.0.0
//
//	# List the choices offered for a prerelease
//	verprompt choices 2.0.0-alpha.2
//
// Config file (.verprompt.yaml):
//
//	format: json
//	logLevel: info
//
// For more detailed API documentation, please see the documentation in the "pkg" package
// or visit [PkgGoDev](https://pkg.go.dev/github.com/bcomnes/verprompt).
package main
