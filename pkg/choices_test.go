package verprompt

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shorts(choices []Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Short
	}
	return out
}

func values(choices []Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Value
	}
	return out
}

func TestReleaseChoicesProduction(t *testing.T) {
	for _, v := range []string{"0.0.1", "2.0.0", "2.0.10", "2.1.0"} {
		t.Run(v, func(t *testing.T) {
			choices, err := ReleaseChoices(v)
			require.NoError(t, err)
			require.Len(t, choices, 4)
			assert.Equal(t, []string{"build", "patch", "minor", "major"}, shorts(choices))

			assert.Equal(t, v, choices[0].Value)
			for _, c := range choices[1:] {
				expected, err := Increment(v, ReleaseType(c.Short), "")
				require.NoError(t, err)
				assert.Equal(t, expected, c.Value)
			}
		})
	}
}

func TestReleaseChoicesPrerelease(t *testing.T) {
	tests := []struct {
		version        string
		expectedShorts []string
		expectedValues []string
	}{
		{
			version:        "2.0.0-alpha.2",
			expectedShorts: []string{"build", "alpha", "beta", "rc", "major"},
			expectedValues: []string{"2.0.0-alpha.2", "2.0.0-alpha.3", "2.0.0-beta.0", "2.0.0-rc.0", "2.0.0"},
		},
		{
			version:        "2.0.0-beta.0",
			expectedShorts: []string{"build", "beta", "rc", "major"},
			expectedValues: []string{"2.0.0-beta.0", "2.0.0-beta.1", "2.0.0-rc.0", "2.0.0"},
		},
		{
			version:        "2.1.0-rc.10",
			expectedShorts: []string{"build", "rc", "minor", "major"},
			expectedValues: []string{"2.1.0-rc.10", "2.1.0-rc.11", "2.1.0", "3.0.0"},
		},
		{
			version:        "2.0.10-alpha.0",
			expectedShorts: []string{"build", "alpha", "beta", "rc", "patch", "minor", "major"},
			expectedValues: []string{
				"2.0.10-alpha.0", "2.0.10-alpha.1", "2.0.10-beta.0", "2.0.10-rc.0",
				"2.0.10", "2.1.0", "3.0.0",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.version, func(t *testing.T) {
			choices, err := ReleaseChoices(tc.version)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedShorts, shorts(choices))
			assert.Equal(t, tc.expectedValues, values(choices))
		})
	}
}

func TestReleaseChoicesLabels(t *testing.T) {
	choices, err := ReleaseChoices("2.1.0-alpha.0")
	require.NoError(t, err)

	labels := map[string]string{}
	for _, c := range choices {
		labels[c.Short] = c.Label
	}
	assert.Equal(t, "build: just re-building (no code changes) (2.1.0-alpha.0 -> 2.1.0-alpha.0)", labels["build"])
	assert.Equal(t, "continue pre-minor: stay in alpha (2.1.0-alpha.0 -> 2.1.0-alpha.1)", labels["alpha"])
	assert.Equal(t, "continue pre-minor: bump up to beta: API changes not expected but still possible. "+
		"No known show-stopper bugs. (2.1.0-alpha.0 -> 2.1.0-beta.0)", labels["beta"])
	assert.Equal(t, "go to production: upgrade current prerelease minor (2.1.0-alpha.0 -> 2.1.0)", labels["minor"])
	assert.Equal(t, "new major: changes break API (backwards-INCOMPATIBLE) (2.1.0-alpha.0 -> 3.0.0)", labels["major"])
	assert.NotContains(t, labels, "patch")
}

// No prerelease choice offers a component coarser than the target as a plain
// bump, and channels behind the current one never appear.
func TestReleaseChoicesPrereleaseInvariants(t *testing.T) {
	for _, v := range []string{
		"2.0.0-alpha.2", "2.0.0-beta.0", "2.0.0-rc.1",
		"2.0.10-alpha.0", "2.0.10-beta.21", "2.0.10-rc.0",
		"2.1.0-alpha.0", "2.1.0-beta.0", "2.1.0-rc.10",
	} {
		parsed := Parse(v)
		targetIndex := componentIndex(parsed.Target())
		rank := channelRank(parsed.Channel())

		choices, err := ReleaseChoices(v)
		require.NoError(t, err)

		production := 0
		prevOrder := -1
		for _, c := range choices {
			order := slices.Index(listOrder, c.Short)
			assert.Greater(t, order, prevOrder, "%s: choices out of order", v)
			prevOrder = order

			if idx := componentIndex(ReleaseType(c.Short)); idx >= 0 {
				assert.LessOrEqual(t, idx, targetIndex, "%s offers superseded %s", v, c.Short)
				if idx == targetIndex {
					production++
					assert.True(t, strings.HasPrefix(c.Label, "go to production"), c.Label)
				}
			}
			if r := channelRank(c.Short); r >= 0 {
				assert.GreaterOrEqual(t, r, rank, "%s offers earlier channel %s", v, c.Short)
			}
			assert.NotEmpty(t, c.Value)
		}
		assert.Equal(t, 1, production, v)
	}
}

func TestReleaseChoicesUnknownChannel(t *testing.T) {
	choices, err := ReleaseChoices("1.0.0-dev.3")
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "alpha", "beta", "rc", "major"}, shorts(choices))
	for _, c := range choices[1:4] {
		assert.Contains(t, c.Label, "bump up to "+c.Short)
	}
}

func TestReleaseChoicesAllZeroPrerelease(t *testing.T) {
	choices, err := ReleaseChoices("0.0.0-alpha.0")
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "alpha", "beta", "rc"}, shorts(choices))
	assert.Equal(t, []string{"0.0.0-alpha.0", "0.0.0-alpha.1", "0.0.0-beta.0", "0.0.0-rc.0"}, values(choices))
	assert.Equal(t, "continue pre-release: stay in alpha (0.0.0-alpha.0 -> 0.0.0-alpha.1)", choices[1].Label)
}

func TestReleaseChoicesInvalidVersion(t *testing.T) {
	_, err := ReleaseChoices("banana")
	require.Error(t, err)
}
