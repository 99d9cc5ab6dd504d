package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func directorySearchTool() mcp.Tool {
	return mcp.Tool{
		Name:        "directory_search",
		Description: "Fuzzy search the Orange County government directory by department, office or official",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text query, e.g. 'animal services' or a phone fragment",
				},
			},
			Required: []string{"query"},
		},
	}
}

func directoryRegexTool() mcp.Tool {
	return mcp.Tool{
		Name:        "directory_regex",
		Description: "Filter directory entries with a case-insensitive regular expression over name, phone, email and URL",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"pattern": map[string]interface{}{
					"type":        "string",
					"description": "RE2 regular expression, e.g. '836-\\d{4}'",
				},
			},
			Required: []string{"pattern"},
		},
	}
}

func directoryBrowseTool() mcp.Tool {
	return mcp.Tool{
		Name:        "directory_browse",
		Description: "List directory categories with the number of entries in each",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

func directoryListTool() mcp.Tool {
	return mcp.Tool{
		Name:        "directory_list",
		Description: "List directory entries grouped by category, or the entries of one category",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Category name; case and small typos are tolerated. Omit to list all categories",
				},
			},
		},
	}
}

func phoneLookupTool() mcp.Tool {
	return mcp.Tool{
		Name:        "phone_lookup",
		Description: "Look up the phone number of a county department or office",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Department or office name, or '311'",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-15)",
					"default":     DefaultPhoneLimit,
					"minimum":     1,
					"maximum":     15,
				},
			},
			Required: []string{"query"},
		},
	}
}
