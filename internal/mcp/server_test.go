package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/genai"
)

// mockGen implements genai.Generator for testing.
type mockGen struct {
	compound *genai.Compound
	err      error
	lastMix  []elements.Element
}

func (m *mockGen) ElementDetails(_ context.Context, _ elements.Element) (*genai.ElementDetails, error) {
	return &genai.ElementDetails{}, nil
}

func (m *mockGen) Speech(_ context.Context, _ string, _ elements.Lang) ([]byte, error) {
	return []byte{0, 0}, nil
}

func (m *mockGen) Combine(_ context.Context, els []elements.Element) (*genai.Compound, error) {
	m.lastMix = els
	if m.err != nil {
		return nil, m.err
	}
	return m.compound, nil
}

func (m *mockGen) Name() string { return "mock" }

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("content is not text: %T", result.Content[0])
	}
	return tc.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"lookup_element", lookupElementTool, "lookup_element"},
		{"search_elements", searchElementsTool, "search_elements"},
		{"mix_elements", mixElementsTool, "mix_elements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	catalog := elements.NewCatalog()
	srv := NewServer(catalog, &mockGen{})

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.catalog != catalog {
		t.Error("catalog not set correctly")
	}
}

func TestHandleLookupElement(t *testing.T) {
	srv := NewServer(elements.NewCatalog(), nil)
	ctx := context.Background()

	t.Run("by symbol", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"element": "Fe"}

		result, err := srv.handleLookupElement(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if text := textContent(t, result); !strings.Contains(text, "Fer (Fe)") {
			t.Errorf("result = %q", text)
		}
	})

	t.Run("by atomic number", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"element": "8"}

		result, err := srv.handleLookupElement(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text := textContent(t, result); !strings.Contains(text, "Oxygène") {
			t.Errorf("result = %q", text)
		}
	})

	t.Run("unknown element", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"element": "Xx"}

		result, err := srv.handleLookupElement(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("unknown element should be a tool error")
		}
	})
}

func TestHandleSearchElements(t *testing.T) {
	srv := NewServer(elements.NewCatalog(), nil)
	ctx := context.Background()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"category": "noble-gas"}

	result, err := srv.handleSearchElements(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := textContent(t, result)
	for _, want := range []string{"Hélium", "Néon", "Argon"} {
		if !strings.Contains(text, want) {
			t.Errorf("result missing %q:\n%s", want, text)
		}
	}
}

func TestHandleMixElements(t *testing.T) {
	ctx := context.Background()

	t.Run("successful mix", func(t *testing.T) {
		gen := &mockGen{compound: &genai.Compound{
			Success: true, NameFr: "Eau", NameAr: "ماء", Formula: "H2O",
			DescriptionFr: "d", DescriptionAr: "d", State: "Liquid",
		}}
		srv := NewServer(elements.NewCatalog(), gen)

		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"symbols": "H, O"}

		result, err := srv.handleMixElements(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if text := textContent(t, result); !strings.Contains(text, "H2O") {
			t.Errorf("result = %q", text)
		}
		if len(gen.lastMix) != 2 {
			t.Errorf("gateway received %d elements, want 2", len(gen.lastMix))
		}
	})

	t.Run("too few symbols", func(t *testing.T) {
		srv := NewServer(elements.NewCatalog(), &mockGen{})
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"symbols": "H"}

		result, err := srv.handleMixElements(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("single symbol should be a tool error")
		}
	})

	t.Run("no provider", func(t *testing.T) {
		srv := NewServer(elements.NewCatalog(), nil)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"symbols": "H,O"}

		result, err := srv.handleMixElements(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("missing provider should be a tool error")
		}
	})

	t.Run("no reaction", func(t *testing.T) {
		gen := &mockGen{compound: &genai.Compound{Success: false, ErrorFr: "Pas de réaction."}}
		srv := NewServer(elements.NewCatalog(), gen)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"symbols": "He,Ne"}

		result, err := srv.handleMixElements(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatal("no reaction is a successful result")
		}
		if text := textContent(t, result); !strings.Contains(text, "No reaction") {
			t.Errorf("result = %q", text)
		}
	})
}
