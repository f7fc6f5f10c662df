package report

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/genai"
)

func sampleData() Data {
	catalog := elements.NewCatalog()
	fe, _ := catalog.ByNumber(26)
	o, _ := catalog.ByNumber(8)
	return Data{
		Element: &fe,
		Details: &genai.ElementDetails{
			DescriptionFr:  "Le fer est un métal de transition.",
			DescriptionAr:  "الحديد معدن انتقالي.",
			ApplicationsFr: []string{"construction", "aciers"},
			ApplicationsAr: []string{"البناء", "الفولاذ"},
			FunFactFr:      "Le noyau terrestre est surtout du fer.",
			FunFactAr:      "نواة الأرض معظمها من الحديد.",
		},
		Lab: []elements.Element{fe, o},
		Mix: &genai.Compound{
			Success:       true,
			NameFr:        "Oxyde de fer",
			NameAr:        "أكسيد الحديد",
			Formula:       "Fe2O3",
			DescriptionFr: "La rouille.",
			DescriptionAr: "الصدأ.",
			State:         "Solid",
			Color:         "#8B4513",
		},
		GeneratedAt: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestMarkdownIncludesAllSections(t *testing.T) {
	md := Markdown(sampleData())
	for _, want := range []string{
		"# Rapport de laboratoire",
		"## Fer (Fe)",
		"Numéro atomique | 26",
		"### Le saviez-vous ?",
		"## Éléments au laboratoire",
		"## Résultat du mélange",
		"`Fe2O3`",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownSkipsEmptySections(t *testing.T) {
	md := Markdown(Data{GeneratedAt: time.Now()})
	for _, absent := range []string{"## Résultat", "## Éléments", "### Description"} {
		if strings.Contains(md, absent) {
			t.Errorf("empty report should not contain %q", absent)
		}
	}
}

func TestMarkdownNoReaction(t *testing.T) {
	d := sampleData()
	d.Mix = &genai.Compound{Success: false, ErrorFr: "Ces éléments ne réagissent pas.", ErrorAr: "لا تفاعل."}
	md := Markdown(d)
	if !strings.Contains(md, "Pas de réaction.") {
		t.Error("no-reaction mixes must be reported as such")
	}
	if strings.Contains(md, "| État |") {
		t.Error("no-reaction mixes have no compound properties")
	}
}

func TestRenderProducesStandalonePage(t *testing.T) {
	page, err := Render(sampleData())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(page)
	if !strings.Contains(s, "<!DOCTYPE html>") {
		t.Error("missing doctype")
	}
	if !strings.Contains(s, "<title>Rapport — Fer</title>") {
		t.Errorf("unexpected title in %q", s[:200])
	}
	// GFM tables survive the conversion.
	if !strings.Contains(s, "<table>") {
		t.Error("properties table not rendered")
	}
}

func TestSaveWritesReportFile(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(dir, sampleData())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved report: %v", err)
	}
	if !strings.Contains(string(data), "Oxyde de fer") {
		t.Error("saved report missing mix result")
	}
	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path = %q", path)
	}
}
