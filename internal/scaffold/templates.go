package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

// Templates ending in .tmpl are rendered with text/template. The rest are
// copied verbatim; publish.yml uses ${{ }} expressions that text/template
// would try to interpret.
//
//go:embed templates/*
var templateFS embed.FS

// TemplateData contains the values available to .tmpl templates.
type TemplateData struct {
	Name  string // package name
	Label string // "CJS" or "ESM"
}

// readTemplate returns the rendered content of the named template.
func readTemplate(name string, data *TemplateData) ([]byte, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	if !strings.HasSuffix(name, ".tmpl") {
		return raw, nil
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
