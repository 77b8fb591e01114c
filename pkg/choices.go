package verprompt

import (
	"cmp"
	"fmt"
	"slices"
)

// Choice is one entry of a list question. Value is what the prompter returns
// when the choice is selected.
type Choice struct {
	Label string `json:"label" yaml:"label"`
	Short string `json:"short" yaml:"short"`
	Value string `json:"value" yaml:"value"`
}

// listOrder is the order in which choices are presented, keyed by Choice.Short.
var listOrder = []string{"build", "alpha", "beta", "rc", "patch", "minor", "major"}

var releaseTypeChoices = []Choice{
	{Short: string(ReleaseBuild), Label: "build: just re-building (no code changes)"},
	{Short: string(ReleasePatch), Label: "patch: bug fixes (backwards-compatible)"},
	{Short: string(ReleaseMinor), Label: "minor: additions to API (backwards-compatible)"},
	{Short: string(ReleaseMajor), Label: "major: changes break API (backwards-INCOMPATIBLE)"},
}

// ReleaseTypeQuestionName identifies the first question asked by Run.
const ReleaseTypeQuestionName = "releaseType"

// ReleaseChoices returns the valid next versions for oldVersion, labelled and
// in presentation order.
//
// A production release always gets build, patch, minor and major. A
// prerelease gets build, a "go to production" choice for the component it
// targets, plain bumps of any coarser component, and one choice per
// prerelease channel that is not behind its current channel.
func ReleaseChoices(oldVersion string) ([]Choice, error) {
	old := Parse(oldVersion)

	var choices []Choice
	var err error
	if old.IsPrerelease() {
		choices, err = prereleaseChoices(oldVersion, old)
	} else {
		choices, err = productionChoices(oldVersion)
	}
	if err != nil {
		return nil, err
	}

	for i := range choices {
		choices[i].Label = fmt.Sprintf("%s (%s -> %s)", choices[i].Label, oldVersion, choices[i].Value)
	}
	return choices, nil
}

// ReleaseTypeQuestion wraps ReleaseChoices in the first question asked by Run.
func ReleaseTypeQuestion(oldVersion string) (Question, error) {
	choices, err := ReleaseChoices(oldVersion)
	if err != nil {
		return Question{}, err
	}
	return Question{
		Name:    ReleaseTypeQuestionName,
		Message: "Choose a version type below.",
		Choices: choices,
	}, nil
}

func productionChoices(oldVersion string) ([]Choice, error) {
	choices := slices.Clone(releaseTypeChoices)
	for i := range choices {
		value, err := Increment(oldVersion, ReleaseType(choices[i].Short), "")
		if err != nil {
			return nil, err
		}
		choices[i].Value = value
	}
	return choices, nil
}

func prereleaseChoices(oldVersion string, old Version) ([]Choice, error) {
	target := old.Target()
	targetIndex := componentIndex(target)
	rank := channelRank(old.Channel())
	stage := string(target)
	if stage == "" {
		// 0.0.0 prereleases build toward no component; only channels are offered
		stage = "release"
	}

	choices := make([]Choice, 0, len(releaseTypeChoices)+len(Channels))
	for _, c := range releaseTypeChoices {
		rt := ReleaseType(c.Short)
		index := componentIndex(rt)
		switch {
		case rt == ReleaseBuild:
			c.Value = oldVersion
		case index == targetIndex:
			c.Label = "go to production: upgrade current prerelease " + string(target)
			c.Value = old.Production()
		case index < targetIndex:
			value, err := Increment(oldVersion, rt, "")
			if err != nil {
				return nil, err
			}
			c.Label = "new " + c.Label
			c.Value = value
		default:
			// superseded by the prerelease in progress
			c.Value = ""
		}
		choices = append(choices, c)
	}

	for i, ch := range Channels {
		if i < rank {
			continue
		}
		value, err := Increment(oldVersion, ReleasePrerelease, ch.Name)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("continue pre-%s: bump up to %s: %s", stage, ch.Name, ch.Description)
		if i == rank {
			label = fmt.Sprintf("continue pre-%s: stay in %s", stage, ch.Name)
		}
		choices = append(choices, Choice{Short: ch.Name, Label: label, Value: value})
	}

	choices = slices.DeleteFunc(choices, func(c Choice) bool { return c.Value == "" })
	slices.SortStableFunc(choices, func(a, b Choice) int {
		return cmp.Compare(slices.Index(listOrder, a.Short), slices.Index(listOrder, b.Short))
	})
	return choices, nil
}
