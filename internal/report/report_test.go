package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMarkdown(t *testing.T) {
	now := time.Date(2023, 10, 27, 9, 30, 0, 0, time.UTC)

	t.Run("renders the table padded to the header width", func(t *testing.T) {
		got := BuildMarkdown([][]string{
			{"Fecha", "Ánimo"},
			{"2023-10-26", "Contento"},
			{"2023-10-27"},
			{"2023-10-28", "Triste", "extra"},
		}, Options{Now: now})

		assert.True(t, strings.HasPrefix(got, "# Informe de Encuestas de Bienestar\n"))
		assert.Contains(t, got, "Generado: 2023-10-27 09:30\n")
		assert.Contains(t, got, "Filas de datos: 3. Columnas: 2.\n")
		assert.Contains(t, got, "| Fecha | Ánimo |\n| --- | --- |\n")
		assert.Contains(t, got, "| 2023-10-26 | Contento |\n")
		assert.Contains(t, got, "| 2023-10-27 |  |\n")
		assert.Contains(t, got, "| 2023-10-28 | Triste |\n")
		assert.NotContains(t, got, "extra")
	})

	t.Run("empty snapshot yields the placeholder line and no table", func(t *testing.T) {
		got := BuildMarkdown(nil, Options{Now: now})

		assert.Contains(t, got, "No hay datos disponibles de la encuesta.\n")
		assert.NotContains(t, got, "| --- |")
	})

	t.Run("question and answer form the analysis section", func(t *testing.T) {
		got := BuildMarkdown([][]string{{"Fecha"}}, Options{
			Now:      now,
			Question: "¿Cuál es el ánimo general?",
			Answer:   "El ánimo general es positivo.",
		})

		assert.Contains(t, got, "## Análisis de la IA\n")
		assert.Contains(t, got, "**Pregunta:** ¿Cuál es el ánimo general?\n")
		assert.Contains(t, got, "**Respuesta:** El ánimo general es positivo.\n")
	})

	t.Run("analysis section is omitted without a question or answer", func(t *testing.T) {
		got := BuildMarkdown([][]string{{"Fecha"}}, Options{Now: now})
		assert.NotContains(t, got, "Análisis de la IA")
	})

	t.Run("pipes in cells are escaped", func(t *testing.T) {
		got := BuildMarkdown([][]string{
			{"Comentario"},
			{"bien | mal"},
		}, Options{Now: now})
		assert.Contains(t, got, `| bien \| mal |`)
	})

	t.Run("custom title replaces the default", func(t *testing.T) {
		got := BuildMarkdown(nil, Options{Title: "Resumen semanal", Now: now})
		assert.True(t, strings.HasPrefix(got, "# Resumen semanal\n"))
	})
}

func TestWrite(t *testing.T) {
	t.Run("rejects output paths without the .md extension", func(t *testing.T) {
		_, err := Write(nil, Options{}, "report.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "output file must have .md extension")
	})

	t.Run("writes the markdown and the PDF next to it", func(t *testing.T) {
		markdownPath := filepath.Join(t.TempDir(), "informe.md")
		pdfPath, err := Write([][]string{
			{"Fecha", "Ánimo"},
			{"2023-10-26", "Contento"},
		}, Options{}, markdownPath)
		require.NoError(t, err)

		content, readErr := os.ReadFile(markdownPath)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "| 2023-10-26 | Contento |")

		assert.Equal(t, ".pdf", filepath.Ext(pdfPath))
		_, statErr := os.Stat(pdfPath)
		assert.NoError(t, statErr)
	})
}
