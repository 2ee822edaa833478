package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dineforge/restalytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONOutputWritesOneFilePerTopic(t *testing.T) {
	dir := t.TempDir()
	out := NewJSONOutput(dir)

	require.NoError(t, out.WriteMessage("revenue-analysis", []byte(`{"a":1}`)))
	require.NoError(t, out.WriteMessage("revenue-analysis", []byte(`{"a":2}`)))
	require.NoError(t, out.WriteMessage("anomaly-detection", []byte(`{"b":1}`)))
	require.NoError(t, out.Close())

	revenue, err := os.ReadFile(filepath.Join(dir, "revenue-analysis.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n{\"a\":2}\n", string(revenue))

	anomaly, err := os.ReadFile(filepath.Join(dir, "anomaly-detection.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\"b\":1}\n", string(anomaly))
}

func TestJSONOutputCreatesBasePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")
	out := NewJSONOutput(dir)

	require.NoError(t, out.WriteMessage("summary", []byte(`{}`)))
	require.NoError(t, out.Close())

	_, err := os.Stat(filepath.Join(dir, "summary.json"))
	assert.NoError(t, err)
}

func TestForConfigSelectsDestination(t *testing.T) {
	dest, err := ForConfig(&models.Config{})
	require.NoError(t, err)
	assert.IsType(t, &ConsoleOutput{}, dest)

	dest, err = ForConfig(&models.Config{OutputFormat: "json", OutputPath: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &JSONOutput{}, dest)
}

func TestConsoleOutputClose(t *testing.T) {
	assert.NoError(t, (&ConsoleOutput{}).Close())
}
