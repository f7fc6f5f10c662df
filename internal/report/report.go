// Package report renders a shareable lab report of the current session:
// the element under study, its generated content and the latest mixing
// outcome.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/genai"
)

// Data is everything a report draws from.
type Data struct {
	Element     *elements.Element
	Details     *genai.ElementDetails
	Lab         []elements.Element
	Mix         *genai.Compound
	GeneratedAt time.Time
}

// Markdown builds the report as a markdown document. Sections for which
// no content exists are left out rather than rendered empty.
func Markdown(d Data) string {
	var b strings.Builder
	b.WriteString("# Rapport de laboratoire\n\n")
	b.WriteString(fmt.Sprintf("_Généré le %s_\n\n", d.GeneratedAt.Format("2006-01-02 15:04")))

	if d.Element != nil {
		el := d.Element
		b.WriteString(fmt.Sprintf("## %s (%s) — %s\n\n", el.NameFr, el.Symbol, el.NameAr))
		b.WriteString("| Propriété | Valeur |\n|---|---|\n")
		b.WriteString(fmt.Sprintf("| Numéro atomique | %d |\n", el.Number))
		b.WriteString(fmt.Sprintf("| Masse atomique | %s |\n", el.AtomicMass))
		b.WriteString(fmt.Sprintf("| Famille | %s |\n\n", elements.CategoryLabels[el.Category].Fr))

		if d.Details != nil {
			b.WriteString("### Description\n\n")
			b.WriteString(d.Details.DescriptionFr + "\n\n")
			b.WriteString("> " + d.Details.DescriptionAr + "\n\n")
			if len(d.Details.ApplicationsFr) > 0 {
				b.WriteString("### Applications\n\n")
				for _, app := range d.Details.ApplicationsFr {
					b.WriteString("- " + app + "\n")
				}
				b.WriteString("\n")
			}
			if d.Details.FunFactFr != "" {
				b.WriteString("### Le saviez-vous ?\n\n")
				b.WriteString(d.Details.FunFactFr + "\n\n")
			}
		}
	}

	if len(d.Lab) > 0 {
		b.WriteString("## Éléments au laboratoire\n\n")
		for _, el := range d.Lab {
			b.WriteString(fmt.Sprintf("- %s (%s)\n", el.NameFr, el.Symbol))
		}
		b.WriteString("\n")
	}

	if d.Mix != nil {
		b.WriteString("## Résultat du mélange\n\n")
		if d.Mix.Success {
			b.WriteString(fmt.Sprintf("**%s** (%s) — `%s`\n\n", d.Mix.NameFr, d.Mix.NameAr, d.Mix.Formula))
			b.WriteString("| Propriété | Valeur |\n|---|---|\n")
			b.WriteString(fmt.Sprintf("| État | %s |\n", d.Mix.State))
			if d.Mix.Color != "" {
				b.WriteString(fmt.Sprintf("| Couleur | %s |\n", d.Mix.Color))
			}
			b.WriteString("\n" + d.Mix.DescriptionFr + "\n\n")
			b.WriteString("> " + d.Mix.DescriptionAr + "\n\n")
		} else {
			b.WriteString("Pas de réaction.\n\n")
			if d.Mix.ErrorFr != "" {
				b.WriteString(d.Mix.ErrorFr + "\n\n")
				b.WriteString("> " + d.Mix.ErrorAr + "\n\n")
			}
		}
	}

	return b.String()
}

// newMarkdown configures the markdown renderer.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// Render converts the report to a standalone HTML page.
func Render(d Data) ([]byte, error) {
	var htmlBuf bytes.Buffer
	if err := newMarkdown().Convert([]byte(Markdown(d)), &htmlBuf); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	tmpl, err := template.New("report").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing report template: %w", err)
	}
	var out bytes.Buffer
	err = tmpl.Execute(&out, map[string]any{
		"Title":   reportTitle(d),
		"Content": template.HTML(htmlBuf.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering report page: %w", err)
	}
	return out.Bytes(), nil
}

// Save writes the rendered report under dir and returns its path.
func Save(dir string, d Data) (string, error) {
	page, err := Render(d)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}
	name := fmt.Sprintf("rapport-%s.html", d.GeneratedAt.Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, page, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

func reportTitle(d Data) string {
	if d.Element != nil {
		return "Rapport — " + d.Element.NameFr
	}
	return "Rapport de laboratoire"
}
