package elements

import (
	"strconv"
	"strings"
)

// Catalog provides lookup and filtering over the static element dataset.
type Catalog struct {
	ordered  []Element
	byNumber map[int]Element
	bySymbol map[string]Element
}

// NewCatalog builds a catalog over the built-in dataset.
func NewCatalog() *Catalog {
	return NewCatalogFrom(Table)
}

// NewCatalogFrom builds a catalog over the given elements.
func NewCatalogFrom(els []Element) *Catalog {
	c := &Catalog{
		ordered:  make([]Element, len(els)),
		byNumber: make(map[int]Element, len(els)),
		bySymbol: make(map[string]Element, len(els)),
	}
	copy(c.ordered, els)
	for _, el := range els {
		c.byNumber[el.Number] = el
		c.bySymbol[strings.ToLower(el.Symbol)] = el
	}
	return c
}

// All returns every element in atomic-number order.
func (c *Catalog) All() []Element {
	out := make([]Element, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of elements in the catalog.
func (c *Catalog) Len() int { return len(c.ordered) }

// ByNumber looks up an element by atomic number.
func (c *Catalog) ByNumber(z int) (Element, bool) {
	el, ok := c.byNumber[z]
	return el, ok
}

// BySymbol looks up an element by its symbol, case-insensitively.
func (c *Catalog) BySymbol(symbol string) (Element, bool) {
	el, ok := c.bySymbol[strings.ToLower(symbol)]
	return el, ok
}

// Filter controls which elements Search returns. Zero values match all.
type Filter struct {
	Query    string
	Category Category
}

// Search returns elements matching the filter: the query matches on the
// French name (substring, case-insensitive), the Arabic name (substring),
// the symbol (case-insensitive) or the exact atomic number.
func (c *Catalog) Search(f Filter) []Element {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	var out []Element
	for _, el := range c.ordered {
		if f.Category != "" && el.Category != f.Category {
			continue
		}
		if q != "" && !matchesQuery(el, q) {
			continue
		}
		out = append(out, el)
	}
	return out
}

func matchesQuery(el Element, q string) bool {
	if strings.Contains(strings.ToLower(el.NameFr), q) {
		return true
	}
	if strings.Contains(el.NameAr, q) {
		return true
	}
	if strings.Contains(strings.ToLower(el.Symbol), q) {
		return true
	}
	return strconv.Itoa(el.Number) == q
}
