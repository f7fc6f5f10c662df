package mcp

import "github.com/mark3labs/mcp-go/mcp"

// lookupElementTool defines the lookup_element MCP tool.
var lookupElementTool = mcp.NewTool("lookup_element",
	mcp.WithDescription("Look up a chemical element by atomic number or symbol. Returns its French and Arabic names, atomic mass, family and position."),
	mcp.WithString("element",
		mcp.Required(),
		mcp.Description("Atomic number (e.g. 26) or symbol (e.g. Fe)"),
	),
)

// searchElementsTool defines the search_elements MCP tool.
var searchElementsTool = mcp.NewTool("search_elements",
	mcp.WithDescription("Search the periodic-table dataset by name (French or Arabic), symbol or family."),
	mcp.WithString("query",
		mcp.Description("Name fragment, symbol or atomic number"),
	),
	mcp.WithString("category",
		mcp.Description("Filter by element family"),
		mcp.Enum("alkali-metal", "alkaline-earth-metal", "transition-metal",
			"post-transition-metal", "metalloid", "nonmetal", "halogen",
			"noble-gas", "lanthanide", "actinide"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 10)"),
	),
)

// mixElementsTool defines the mix_elements MCP tool.
var mixElementsTool = mcp.NewTool("mix_elements",
	mcp.WithDescription("Combine 2 to 5 elements and get the most plausible compound, or a no-reaction verdict. Requires a configured generation provider."),
	mcp.WithString("symbols",
		mcp.Required(),
		mcp.Description("Comma-separated element symbols, e.g. \"H,O\" or \"Na,Cl\""),
	),
)
