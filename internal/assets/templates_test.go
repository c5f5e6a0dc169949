package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardView struct {
	AIReady      bool
	AIModel      string
	AIReason     string
	LoadMessage  string
	LoadError    string
	HasData      bool
	Header       []string
	Rows         [][]string
	DataRowCount int
	ColumnCount  int
	Question     string
	Warning      string
	Answer       string
}

func TestParseDashboardTemplate(t *testing.T) {
	t.Run("embedded fallback renders the page", func(t *testing.T) {
		tmpl, err := ParseDashboardTemplate("")
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, tmpl.Execute(&buf, dashboardView{
			AIReady:      true,
			AIModel:      "gemini-1.5-pro",
			HasData:      true,
			Header:       []string{"Fecha", "Ánimo"},
			Rows:         [][]string{{"2023-10-26", "Contento"}},
			DataRowCount: 1,
			ColumnCount:  2,
			Question:     "¿Cuál es el ánimo general?",
			Answer:       "El ánimo general es positivo.",
		}))

		page := buf.String()
		assert.Contains(t, page, "MVP de Monitorización de Bienestar para Adultos Mayores")
		assert.Contains(t, page, "Gemini Model Initialized (gemini-1.5-pro)")
		assert.Contains(t, page, "<th style=")
		assert.Contains(t, page, "Contento")
		assert.Contains(t, page, "¿Cuál es el ánimo general?")
		assert.Contains(t, page, "Respuesta de la IA:")
	})

	t.Run("cell text is escaped", func(t *testing.T) {
		tmpl, err := ParseDashboardTemplate("")
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, tmpl.Execute(&buf, dashboardView{
			HasData:      true,
			Header:       []string{"<script>alert(1)</script>"},
			Rows:         [][]string{{"<b>negrita</b>"}},
			DataRowCount: 1,
			ColumnCount:  1,
		}))

		page := buf.String()
		assert.NotContains(t, page, "<script>alert(1)</script>")
		assert.NotContains(t, page, "<b>negrita</b>")
	})

	t.Run("filesystem override wins", func(t *testing.T) {
		templatePath := filepath.Join(t.TempDir(), "dashboard.html.go.tmpl")
		require.NoError(t, os.WriteFile(templatePath, []byte("custom: {{ .AIModel }}"), 0644))

		tmpl, err := ParseDashboardTemplate(templatePath)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, tmpl.Execute(&buf, dashboardView{AIModel: "gemini-1.5-pro"}))
		assert.Equal(t, "custom: gemini-1.5-pro", buf.String())
	})

	t.Run("unparsable override falls back to the embedded template", func(t *testing.T) {
		templatePath := filepath.Join(t.TempDir(), "dashboard.html.go.tmpl")
		require.NoError(t, os.WriteFile(templatePath, []byte("{{ .Broken"), 0644))

		tmpl, err := ParseDashboardTemplate(templatePath)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, tmpl.Execute(&buf, dashboardView{}))
		assert.Contains(t, buf.String(), "MVP de Monitorización de Bienestar para Adultos Mayores")
	})
}
