package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"token-bridge/core/reconcile"
	"token-bridge/core/tokens"
	tokenfeature "token-bridge/feature/tokens"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotFixture = `{
	"variables": [
		{"id": "v1", "name": "primary/500", "kind": "COLOR", "collectionName": "Colors",
		 "valuesByMode": {"Light": "#6366f1", "Dark": "#818cf8"}},
		{"id": "v2", "name": "radius/sm", "kind": "FLOAT", "collectionName": "Shape",
		 "valuesByMode": {"Light": 4}}
	]
}`

const documentFixture = `
colors:
  primary:
    "500":
      $type: color
      $value: "#6366F1"
spacing:
  md:
    $type: dimension
    $value: 16px
`

// resetFlags restores every flag to its default so commands can run twice.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(RootCmd)
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&bytes.Buffer{})
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPaletteCommand(t *testing.T) {
	t.Run("Table", func(t *testing.T) {
		out, err := runCommand(t, "palette", "#6366f1")
		require.NoError(t, err)
		assert.Contains(t, out, "complementary")
		assert.Contains(t, out, "950")
		assert.Contains(t, out, "success")
	})

	t.Run("CSS", func(t *testing.T) {
		out, err := runCommand(t, "palette", "#6366f1", "--format", "css", "--harmony", "triadic")
		require.NoError(t, err)
		assert.Contains(t, out, ":root {")
		assert.Contains(t, out, "--primary-500: ")
	})

	t.Run("Invalid Seed", func(t *testing.T) {
		_, err := runCommand(t, "palette", "indigo")
		assert.Error(t, err)
	})

	t.Run("Invalid Harmony", func(t *testing.T) {
		_, err := runCommand(t, "palette", "#6366f1", "--harmony", "tetradic")
		assert.Error(t, err)
	})
}

func TestCompareCommand(t *testing.T) {
	snapshot := writeFile(t, "variables.json", snapshotFixture)
	document := writeFile(t, "tokens.yaml", documentFixture)

	t.Run("JSON", func(t *testing.T) {
		out, err := runCommand(t, "compare", snapshot, document, "--mode", "Light", "--json")
		require.NoError(t, err)

		var result reconcile.Result
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, "Light", result.Mode)
		assert.Equal(t, 1, result.Summary.Synced)
		assert.Equal(t, 1, result.Summary.VariableOnly)
		assert.Equal(t, 1, result.Summary.TokenOnly)
	})

	t.Run("Status Filter", func(t *testing.T) {
		out, err := runCommand(t, "compare", snapshot, document, "--mode", "Dark", "--status", "needs-sync", "--json")
		require.NoError(t, err)

		var result reconcile.Result
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.Len(t, result.Items, 1)
		assert.Equal(t, "colors.primary.500", result.Items[0].MatchKey)
	})

	t.Run("Table", func(t *testing.T) {
		out, err := runCommand(t, "compare", snapshot, document)
		require.NoError(t, err)
		assert.Contains(t, out, "mode: Light")
		assert.Contains(t, out, "shape.radius.sm")
	})

	t.Run("Fail On Drift", func(t *testing.T) {
		_, err := runCommand(t, "compare", snapshot, document, "--fail-on-drift")
		assert.EqualError(t, err, "2 of 3 items are not synced")
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := runCommand(t, "compare", filepath.Join(t.TempDir(), "none.json"), document)
		assert.Error(t, err)
	})
}

func TestTokensFlattenCommand(t *testing.T) {
	document := writeFile(t, "tokens.yaml", documentFixture)

	out, err := runCommand(t, "tokens", "flatten", document, "--kind", "color", "--json")
	require.NoError(t, err)

	var flat tokenfeature.Flattened
	require.NoError(t, json.Unmarshal([]byte(out), &flat))
	require.Len(t, flat.Tokens, 1)
	assert.Equal(t, "colors.primary.500", flat.Tokens[0].Path)
	assert.Equal(t, 1, flat.Summary.Total)

	out, err = runCommand(t, "tokens", "flatten", document)
	require.NoError(t, err)
	assert.Contains(t, out, "spacing.md")
	assert.Contains(t, out, "(2 tokens in 2 groups)")

	_, err = runCommand(t, "tokens", "flatten")
	assert.Error(t, err)
}

func TestRenderTokensTable_Empty(t *testing.T) {
	var out bytes.Buffer
	renderTokensTable(&out, []tokens.Token{})
	assert.Equal(t, "(0 tokens)\n", out.String())
}

func TestRenderCompareTable_Duplicates(t *testing.T) {
	var out bytes.Buffer
	renderCompareTable(&out, reconcile.Result{
		Mode:       "Light",
		Duplicates: []string{"colors.primary"},
	})
	assert.Contains(t, out.String(), "duplicate keys: [colors.primary]")
	assert.Contains(t, out.String(), "synced 0")
}
