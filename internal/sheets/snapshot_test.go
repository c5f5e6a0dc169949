package sheets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/acalderon/encuestas/internal/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_roundTrip(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want [][]string
	}{
		{
			name: "rows with non-ASCII text and an empty row",
			rows: [][]string{
				{"Fecha", "Ánimo", "Contacto social"},
				{"2023-10-26", "Contento", "Sí, con familia"},
				{},
				{"2023-10-27", "Triste"},
			},
			want: [][]string{
				{"Fecha", "Ánimo", "Contacto social"},
				{"2023-10-26", "Contento", "Sí, con familia"},
				{},
				{"2023-10-27", "Triste"},
			},
		},
		{
			name: "empty sheet",
			rows: [][]string{},
			want: [][]string{},
		},
		{
			name: "nil rows are written as an empty array",
			rows: nil,
			want: [][]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "temp_sheet_data.json")
			require.NoError(t, WriteSnapshot(path, tt.rows))

			got, err := ReadSnapshot(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteSnapshot_nonASCIIIsLiteral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp_sheet_data.json")
	require.NoError(t, WriteSnapshot(path, [][]string{{"Ánimo", "¿Cómo está?"}}))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "Ánimo")
	assert.Contains(t, string(contents), "¿Cómo está?")
	assert.NotContains(t, string(contents), `\u`)
}

func TestWriteSnapshot_overwritesPriorContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp_sheet_data.json")
	require.NoError(t, WriteSnapshot(path, [][]string{
		{"Fecha", "Ánimo"},
		{"2023-10-26", "Contento"},
		{"2023-10-27", "Triste"},
	}))
	require.NoError(t, WriteSnapshot(path, [][]string{{"solo"}}))

	got, err := ReadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"solo"}}, got)
}

func TestReadSnapshot_errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadSnapshot(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Equal(t, fault.KindUnknown, fault.KindOf(err))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "temp_sheet_data.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := ReadSnapshot(path)
		require.Error(t, err)
		assert.Equal(t, fault.KindMalformedData, fault.KindOf(err))
	})
}
