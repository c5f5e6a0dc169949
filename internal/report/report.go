// Package report renders a loaded survey snapshot as a markdown document and
// converts it to PDF.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mandolyte/mdtopdf"
)

// Options selects the optional sections of a report.
type Options struct {
	Title    string
	Question string
	Answer   string
	Now      time.Time
}

const defaultTitle = "Informe de Encuestas de Bienestar"

// BuildMarkdown renders sheetData as a markdown report. The first row is the
// table header; data rows are padded or truncated to the header width so the
// table stays well-formed. Cell text containing pipes is escaped.
func BuildMarkdown(sheetData [][]string, opts Options) string {
	title := opts.Title
	if title == "" {
		title = defaultTitle
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Generado: %s\n\n", now.Format("2006-01-02 15:04"))

	if len(sheetData) == 0 {
		b.WriteString("No hay datos disponibles de la encuesta.\n")
	} else {
		header := sheetData[0]
		rows := sheetData[1:]
		fmt.Fprintf(&b, "Filas de datos: %d. Columnas: %d.\n\n", len(rows), len(header))

		writeTableRow(&b, header, len(header))
		b.WriteString("|")
		for range header {
			b.WriteString(" --- |")
		}
		b.WriteString("\n")
		for _, row := range rows {
			writeTableRow(&b, row, len(header))
		}
	}

	if opts.Question != "" || opts.Answer != "" {
		b.WriteString("\n## Análisis de la IA\n\n")
		if opts.Question != "" {
			fmt.Fprintf(&b, "**Pregunta:** %s\n\n", opts.Question)
		}
		if opts.Answer != "" {
			fmt.Fprintf(&b, "**Respuesta:** %s\n", opts.Answer)
		}
	}
	return b.String()
}

func writeTableRow(b *strings.Builder, row []string, width int) {
	b.WriteString("|")
	for i := 0; i < width; i++ {
		cell := ""
		if i < len(row) {
			cell = strings.ReplaceAll(row[i], "|", "\\|")
		}
		fmt.Fprintf(b, " %s |", cell)
	}
	b.WriteString("\n")
}

// Write saves the markdown report to markdownPath and converts it to a PDF
// next to it, returning the absolute PDF path.
func Write(sheetData [][]string, opts Options, markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("output file must have .md extension: %s", markdownPath)
	}

	markdown := BuildMarkdown(sheetData, opts)
	if err := os.WriteFile(markdownPath, []byte(markdown), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process([]byte(markdown)); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
