package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCalc(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	// Point at a missing file so defaults apply regardless of cwd.
	args = append([]string{"--config", filepath.Join(t.TempDir(), "config.json")}, args...)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRunWithDefaults(t *testing.T) {
	out, err := runCalc(t)
	require.NoError(t, err)

	assert.Contains(t, out, "$1,997,424")
	assert.Contains(t, out, "$3,530,800")
	assert.Contains(t, out, "+$1,533,376")
	assert.Contains(t, out, "adding serious top-line")
}

func TestRunWithOverrides(t *testing.T) {
	out, err := runCalc(t, "--list-size", "1000000", "--new-sends", "14")
	require.NoError(t, err)

	// 1M subscribers, 14 sends/week: 1,000,000 * 14 * 52.
	assert.Contains(t, out, "728,000,000")
}

func TestRunRejectsOutOfRangeOverrides(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"open rate above 100", []string{"--current-open", "150"}},
		{"margin below floor", []string{"--margin", "5"}},
		{"negative sends", []string{"--new-sends", "-1"}},
		{"zero list size", []string{"--list-size", "0"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runCalc(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestRunOverridesKeepRatesBounded(t *testing.T) {
	// A 100% open rate is the allowed maximum: opens may equal sends but
	// never exceed them.
	out, err := runCalc(t, "--current-open", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "52,000,000")
}
