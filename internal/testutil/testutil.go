// Package testutil provides shared test helpers for creating config files and
// survey snapshot fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// SampleSheetData is a small survey matrix reused across tests: a header row
// and two data rows with non-ASCII cells.
func SampleSheetData() [][]string {
	return [][]string{
		{"Fecha", "Ánimo"},
		{"2023-10-26", "Contento"},
		{"2023-10-27", "Triste"},
	}
}

// ConfigOption mutates the settings map before it is written to disk.
type ConfigOption func(settings map[string]any)

// WithSetting sets one top-level section of the config file.
func WithSetting(section string, value any) ConfigOption {
	return func(settings map[string]any) {
		settings[section] = value
	}
}

// SetupTestConfig writes a minimal valid config file into tmpDir, pointing
// the snapshot at a file inside tmpDir, and returns the config path.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	settings := map[string]any{
		"sheets": map[string]any{
			"spreadsheet_id": "test-spreadsheet-id",
			"snapshot_file":  filepath.Join(tmpDir, "temp_sheet_data.json"),
		},
	}
	for _, opt := range opts {
		opt(settings)
	}

	content, err := yaml.Marshal(settings)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, content, 0644))
	return configPath
}

// WriteSnapshotFixture writes sheetData as a snapshot JSON file in tmpDir and
// returns its path.
func WriteSnapshotFixture(t *testing.T, tmpDir string, content string) string {
	t.Helper()

	snapshotPath := filepath.Join(tmpDir, "temp_sheet_data.json")
	require.NoError(t, os.WriteFile(snapshotPath, []byte(content), 0644))
	return snapshotPath
}
