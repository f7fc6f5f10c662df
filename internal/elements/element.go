package elements

// Lang identifies one of the two display languages.
type Lang string

const (
	LangFr Lang = "fr"
	LangAr Lang = "ar"
)

// Valid reports whether l is a known language tag.
func (l Lang) Valid() bool {
	return l == LangFr || l == LangAr
}

// Category classifies an element into one of the fixed periodic-table groups.
type Category string

const (
	AlkaliMetal         Category = "alkali-metal"
	AlkalineEarthMetal  Category = "alkaline-earth-metal"
	TransitionMetal     Category = "transition-metal"
	PostTransitionMetal Category = "post-transition-metal"
	Metalloid           Category = "metalloid"
	Nonmetal            Category = "nonmetal"
	Halogen             Category = "halogen"
	NobleGas            Category = "noble-gas"
	Lanthanide          Category = "lanthanide"
	Actinide            Category = "actinide"
	Unknown             Category = "unknown"
)

// Categories lists all categories in display order.
var Categories = []Category{
	AlkaliMetal,
	AlkalineEarthMetal,
	TransitionMetal,
	PostTransitionMetal,
	Metalloid,
	Nonmetal,
	Halogen,
	NobleGas,
	Lanthanide,
	Actinide,
	Unknown,
}

// CategoryLabel holds the localized display names of a category.
type CategoryLabel struct {
	Fr string `json:"fr"`
	Ar string `json:"ar"`
}

// CategoryLabels maps each category to its localized labels.
var CategoryLabels = map[Category]CategoryLabel{
	AlkaliMetal:         {Fr: "Métaux alcalins", Ar: "فلزات قلوية"},
	AlkalineEarthMetal:  {Fr: "Métaux alcalino-terreux", Ar: "فلزات قلوية ترابية"},
	TransitionMetal:     {Fr: "Métaux de transition", Ar: "فلزات انتقالية"},
	PostTransitionMetal: {Fr: "Métaux pauvres", Ar: "فلزات بعد انتقالية"},
	Metalloid:           {Fr: "Métalloïdes", Ar: "أشباه الفلزات"},
	Nonmetal:            {Fr: "Non-métaux", Ar: "اللافلزات"},
	Halogen:             {Fr: "Halogènes", Ar: "الهالوجينات"},
	NobleGas:            {Fr: "Gaz nobles", Ar: "الغازات النبيلة"},
	Lanthanide:          {Fr: "Lanthanides", Ar: "اللانثانيدات"},
	Actinide:            {Fr: "Actinides", Ar: "الأكتينيدات"},
	Unknown:             {Fr: "Inconnu", Ar: "غير معروف"},
}

// CategoryColors maps each category to a hex color hint for the UI.
var CategoryColors = map[Category]string{
	AlkaliMetal:         "#ef4444",
	AlkalineEarthMetal:  "#fb923c",
	TransitionMetal:     "#eab308",
	PostTransitionMetal: "#4ade80",
	Metalloid:           "#14b8a6",
	Nonmetal:            "#3b82f6",
	Halogen:             "#6366f1",
	NobleGas:            "#a855f7",
	Lanthanide:          "#f472b6",
	Actinide:            "#fb7185",
	Unknown:             "#475569",
}

// Element is one entry of the static periodic-table dataset. It is immutable
// reference data, never mutated after load.
type Element struct {
	Number     int      `json:"number"` // atomic number (Z), unique key
	Symbol     string   `json:"symbol"`
	NameFr     string   `json:"name_fr"`
	NameAr     string   `json:"name_ar"`
	AtomicMass string   `json:"atomic_mass"`
	Category   Category `json:"category"`
	Group      int      `json:"group,omitempty"` // 0 for f-block rows
	Period     int      `json:"period"`
	Summary    string   `json:"summary,omitempty"`
}

// Name returns the element name in the given language.
func (e Element) Name(lang Lang) string {
	if lang == LangAr {
		return e.NameAr
	}
	return e.NameFr
}

// GridRow returns the display row on the simplified 18-column grid.
// Lanthanides and actinides are pulled out into rows 8 and 9.
func (e Element) GridRow() int {
	switch e.Category {
	case Lanthanide:
		return 8
	case Actinide:
		return 9
	}
	return e.Period
}

// GridColumn returns the display column on the simplified 18-column grid.
func (e Element) GridColumn() int {
	switch e.Category {
	case Lanthanide:
		return (e.Number - 57) + 3
	case Actinide:
		return (e.Number - 89) + 3
	}
	return e.Group
}
