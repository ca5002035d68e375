package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return stdout.String(), stderr.String()
}

func TestRootHelp(t *testing.T) {
	out, _ := run(t, "--help")
	assert.Contains(t, out, "fitcoach")
}

func TestImageCommand(t *testing.T) {
	t.Setenv("IMAGE_BASE_URL", "")
	out, _ := run(t, "image", "--type", "exercise", "--label", "Push Ups")
	assert.Equal(t, "https://source.unsplash.com/featured/512x512/?exercise%20Push%20Ups\n", out)
}

func TestPlanCommandWritesBaselineWithoutKey(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	path := filepath.Join(t.TempDir(), "plan.txt")

	out, errOut := run(t, "plan", "--name", "Asha Rao", "--age", "29", "--diet", "vegan", "--out", path)
	assert.Contains(t, out, "Wrote "+path)
	assert.Contains(t, errOut, "outcome: no_credential")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "AI Fitness Plan for Asha Rao\n"))
	assert.Contains(t, text, "Generic vegan diet plan:")
	assert.Contains(t, text, "=== TIPS & MOTIVATION ===\nHi Asha Rao!")
}

func TestPlanCommandJSON(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	out, _ := run(t, "plan", "--name", "Ravi", "--json", "--out", "-")
	assert.Contains(t, out, `"workoutPlan": "Sample workout plan for Ravi:`)
	assert.Contains(t, out, `"tips": "Hi Ravi!`)
}
