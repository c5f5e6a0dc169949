package assets

import (
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
)

//go:embed templates/dashboard.html.go.tmpl
var fallbackDashboardTemplate string

// ParseDashboardTemplate parses the dashboard page template. When
// templatePath names a readable file it is used; otherwise the embedded
// template applies. An unparsable override is logged and falls back rather
// than failing startup.
func ParseDashboardTemplate(templatePath string) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New("dashboard.html.go.tmpl").Parse(fallbackDashboardTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
