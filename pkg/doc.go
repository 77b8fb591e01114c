// Package verprompt provides a library for choosing the next semantic version of a package interactively.
//
// It provides functionalities for:
//   - Parsing a version string into its major, minor and patch numbers and an optional prerelease tag
//     (e.g. "alpha.2"), and stripping that tag to get the production version.
//   - Incrementing versions with the usual release types (major, minor, patch, premajor, preminor,
//     prepatch, prerelease) and classifying the difference between two versions.
//   - Generating the list of valid next versions for a current version, following the prerelease
//     lifecycle alpha -> beta -> rc -> production.
//   - Reducing the user's answers into a single final version, asking whether the release is a
//     prerelease only when a production release is bumped to another production release.
//
// Questions are presented through the Prompter interface, so the library works with any rendering.
// LinePrompter reads numbered answers from an io.Reader and ScriptedPrompter answers from a fixed list.
//
// Usage Example:
//
//	import (
//	    "context"
//	    "log"
//	    "os"
//
//	    verprompt "github.com/bcomnes/verprompt/pkg"
//	)
//
//	func main() {
//	    p := verprompt.NewLinePrompter(os.Stdin, os.Stderr)
//	    next, err := verprompt.GetNewVersion(context.Background(), p, "2.0.0-alpha.2")
//	    if err != nil {
//	        log.Fatalf("choosing version failed: %v", err)
//	    }
//	    log.Println("next version:", next)
//	}
//
// For additional details and API documentation, see https://pkg.go.dev/github.com/bcomnes/verprompt.
package verprompt
