package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/explorer"
)

// handleLookupElement resolves an element by atomic number or symbol.
func (s *Server) handleLookupElement(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := request.RequireString("element")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: element"), nil
	}

	var (
		el elements.Element
		ok bool
	)
	if number, convErr := strconv.Atoi(strings.TrimSpace(key)); convErr == nil {
		el, ok = s.catalog.ByNumber(number)
	} else {
		el, ok = s.catalog.BySymbol(strings.TrimSpace(key))
	}
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown element %q", key)), nil
	}

	return mcp.NewToolResultText(formatElement(el)), nil
}

// handleSearchElements performs a catalog search.
func (s *Server) handleSearchElements(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := elements.Filter{
		Query:    request.GetString("query", ""),
		Category: elements.Category(request.GetString("category", "")),
	}
	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	results := s.catalog.Search(filter)
	if len(results) == 0 {
		return mcp.NewToolResultText("No elements matched."), nil
	}
	if len(results) > limit {
		results = results[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d element(s):\n\n", len(results))
	for _, el := range results {
		label := elements.CategoryLabels[el.Category]
		fmt.Fprintf(&b, "- %d %s — %s / %s (%s)\n", el.Number, el.Symbol, el.NameFr, el.NameAr, label.Fr)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleMixElements resolves symbols and asks the gateway for a compound.
func (s *Server) handleMixElements(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbolsStr, err := request.RequireString("symbols")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: symbols"), nil
	}
	if s.gen == nil {
		return mcp.NewToolResultError("no generation provider configured; run `alkimiya init` and set the provider API key"), nil
	}

	var els []elements.Element
	for _, sym := range strings.Split(symbolsStr, ",") {
		sym = strings.TrimSpace(sym)
		if sym == "" {
			continue
		}
		el, ok := s.catalog.BySymbol(sym)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown element symbol %q", sym)), nil
		}
		els = append(els, el)
	}
	if len(els) < 2 || len(els) > explorer.MaxLabElements {
		return mcp.NewToolResultError(explorer.ErrInvalidSelection.Error()), nil
	}

	compound, err := s.gen.Combine(ctx, els)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("mix failed: %v", err)), nil
	}

	if !compound.Success {
		msg := "No reaction."
		if compound.ErrorFr != "" {
			msg = fmt.Sprintf("No reaction: %s / %s", compound.ErrorFr, compound.ErrorAr)
		}
		return mcp.NewToolResultText(msg), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s / %s (%s)\n", compound.NameFr, compound.NameAr, compound.Formula)
	fmt.Fprintf(&b, "State: %s\n", compound.State)
	if compound.Color != "" {
		fmt.Fprintf(&b, "Color: %s\n", compound.Color)
	}
	fmt.Fprintf(&b, "\n%s\n\n%s\n", compound.DescriptionFr, compound.DescriptionAr)
	return mcp.NewToolResultText(b.String()), nil
}

// formatElement renders one element as readable text.
func formatElement(el elements.Element) string {
	label := elements.CategoryLabels[el.Category]
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) — %s\n", el.NameFr, el.Symbol, el.NameAr)
	fmt.Fprintf(&b, "Atomic number: %d\n", el.Number)
	fmt.Fprintf(&b, "Atomic mass: %s\n", el.AtomicMass)
	fmt.Fprintf(&b, "Family: %s / %s\n", label.Fr, label.Ar)
	fmt.Fprintf(&b, "Grid position: row %d, column %d\n", el.GridRow(), el.GridColumn())
	return b.String()
}
