package verprompt

import (
	"context"
	"fmt"
	"log/slog"
)

// Question is a list question handed to a Prompter.
type Question struct {
	Name    string
	Message string
	Choices []Choice
	Default int // index into Choices
}

// Prompter presents a question and returns the Value of the selected choice.
type Prompter interface {
	Ask(ctx context.Context, q Question) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(ctx context.Context, q Question) (string, error)

// Ask calls f.
func (f PrompterFunc) Ask(ctx context.Context, q Question) (string, error) {
	return f(ctx, q)
}

const (
	// PrereleaseQuestionName identifies the follow-up question asked after an
	// unqualified patch, minor or major bump of a production release.
	PrereleaseQuestionName = "prerelease"

	// NoPrerelease is the answer to the prerelease question that keeps the
	// release in production.
	NoPrerelease = "no"
)

// PrereleaseQuestion returns the "Is this a prerelease?" question. Its
// default answer is NoPrerelease; the other answers are channel names.
func PrereleaseQuestion() Question {
	choices := []Choice{{
		Label: "No, this is a production release.",
		Short: NoPrerelease,
		Value: NoPrerelease,
	}}
	for _, ch := range Channels {
		choices = append(choices, Choice{
			Label: "Yes - " + ch.Name + ": " + ch.Description,
			Short: ch.Name,
			Value: ch.Name,
		})
	}
	return Question{
		Name: PrereleaseQuestionName,
		Message: "Is this a prerelease (version is unstable and might " +
			"not satisfy the intended compatibility requirements)?",
		Choices: choices,
	}
}

// Bump holds the outcome of a version selection.
type Bump struct {
	OldVersion  string      `json:"oldVersion" yaml:"oldVersion"`
	NewVersion  string      `json:"newVersion" yaml:"newVersion"`
	ReleaseType ReleaseType `json:"releaseType" yaml:"releaseType"` // build when the version is unchanged
}

// Bumper walks a user through choosing the next version.
type Bumper struct {
	prompter Prompter
	logger   *slog.Logger
}

// Option configures a Bumper.
type Option func(*Bumper)

// WithLogger sets the logger used for warnings and debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bumper) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New returns a Bumper that asks its questions through p.
func New(p Prompter, opts ...Option) *Bumper {
	b := &Bumper{prompter: p, logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// GetNewVersion asks the release type question, and the prerelease question
// when needed, and returns the version the answers lead to.
func GetNewVersion(ctx context.Context, p Prompter, oldVersion string, opts ...Option) (string, error) {
	bump, err := New(p, opts...).Run(ctx, oldVersion)
	if err != nil {
		return "", err
	}
	return bump.NewVersion, nil
}

// Run asks at most two questions, one after the other, and returns the
// resulting Bump. Errors from the prompter are returned wrapped.
func (b *Bumper) Run(ctx context.Context, oldVersion string) (Bump, error) {
	meta := Bump{OldVersion: oldVersion}

	q, err := ReleaseTypeQuestion(oldVersion)
	if err != nil {
		return meta, err
	}
	b.logger.Debug("asking release type", "version", oldVersion, "choices", len(q.Choices))

	picked, err := b.prompter.Ask(ctx, q)
	if err != nil {
		return meta, fmt.Errorf("asking release type: %w", err)
	}

	meta.NewVersion, err = b.reduce(ctx, oldVersion, picked)
	if err != nil {
		return meta, err
	}

	meta.ReleaseType, err = releaseType(oldVersion, meta.NewVersion)
	return meta, err
}

// releaseType classifies a bump. Leaving a prerelease for production is
// reported as the component released, not as a prerelease change.
func releaseType(oldVersion, newVersion string) (ReleaseType, error) {
	if newVersion == oldVersion {
		return ReleaseBuild, nil
	}
	old := Parse(oldVersion)
	if !old.IsPrerelease() || Parse(newVersion).IsPrerelease() {
		return Diff(oldVersion, newVersion)
	}

	rt, err := Diff(old.Production(), newVersion)
	if err != nil {
		return "", err
	}
	if rt == "" {
		rt = old.Target()
	}
	if rt == "" {
		return Diff(oldVersion, newVersion)
	}
	return rt, nil
}

// reduce turns the release type answer into the final version, asking the
// prerelease question when moving from a production release to an
// unqualified patch, minor or major.
func (b *Bumper) reduce(ctx context.Context, oldVersion, picked string) (string, error) {
	switch {
	case picked == oldVersion:
		b.logger.Warn("build-only re-releases are not versioned separately, keeping version unchanged",
			"version", oldVersion)
		return oldVersion, nil
	case Parse(picked).IsPrerelease():
		b.logger.Debug("staying in prerelease", "version", picked)
		return picked, nil
	case Parse(oldVersion).IsPrerelease():
		b.logger.Debug("going to production", "from", oldVersion, "to", picked)
		return picked, nil
	}

	answer, err := b.prompter.Ask(ctx, PrereleaseQuestion())
	if err != nil {
		return "", fmt.Errorf("asking prerelease channel: %w", err)
	}
	if answer == NoPrerelease {
		return picked, nil
	}

	rt, err := Diff(oldVersion, picked)
	if err != nil {
		return "", err
	}
	if !rt.IsPrerelease() {
		rt = "pre" + rt
	}
	b.logger.Debug("starting prerelease", "releaseType", rt, "channel", answer)
	return Increment(oldVersion, rt, answer)
}
