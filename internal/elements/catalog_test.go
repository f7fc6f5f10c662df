package elements

import "testing"

func TestLookupByNumberAndSymbol(t *testing.T) {
	c := NewCatalog()

	h, ok := c.ByNumber(1)
	if !ok {
		t.Fatal("expected hydrogen by number")
	}
	if h.Symbol != "H" {
		t.Errorf("expected symbol H, got %q", h.Symbol)
	}

	au, ok := c.BySymbol("au")
	if !ok {
		t.Fatal("expected gold by lowercase symbol")
	}
	if au.Number != 79 {
		t.Errorf("expected atomic number 79, got %d", au.Number)
	}

	if _, ok := c.ByNumber(200); ok {
		t.Error("expected miss for unknown atomic number")
	}
}

func TestSearchMatchesNameSymbolAndNumber(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		name   string
		filter Filter
		want   int // expected atomic number of first hit
	}{
		{"french name substring", Filter{Query: "oxyg"}, 8},
		{"arabic name substring", Filter{Query: "ذهب"}, 79},
		{"symbol case-insensitive", Filter{Query: "fe"}, 26},
		{"exact atomic number", Filter{Query: "92"}, 92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Search(tt.filter)
			if len(got) == 0 {
				t.Fatalf("no results for %+v", tt.filter)
			}
			if got[0].Number != tt.want {
				t.Errorf("expected first hit %d, got %d", tt.want, got[0].Number)
			}
		})
	}
}

func TestSearchByCategory(t *testing.T) {
	c := NewCatalog()

	nobles := c.Search(Filter{Category: NobleGas})
	if len(nobles) != 6 {
		t.Fatalf("expected 6 noble gases, got %d", len(nobles))
	}
	for _, el := range nobles {
		if el.Category != NobleGas {
			t.Errorf("element %s has category %s", el.Symbol, el.Category)
		}
	}

	// Category and query combine.
	got := c.Search(Filter{Category: NobleGas, Query: "xén"})
	if len(got) != 1 || got[0].Symbol != "Xe" {
		t.Errorf("expected only xenon, got %v", got)
	}
}

func TestGridPlacementPullsOutActinides(t *testing.T) {
	c := NewCatalog()
	u, _ := c.ByNumber(92)

	if row := u.GridRow(); row != 9 {
		t.Errorf("expected actinide row 9, got %d", row)
	}
	if col := u.GridColumn(); col != 6 {
		t.Errorf("expected uranium at column 6, got %d", col)
	}

	fe, _ := c.ByNumber(26)
	if fe.GridRow() != 4 || fe.GridColumn() != 8 {
		t.Errorf("expected iron at (4,8), got (%d,%d)", fe.GridRow(), fe.GridColumn())
	}
}
