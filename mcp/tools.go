package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/ocfl/ocfl"
)

// DefaultPhoneLimit is the number of phone_lookup results when no limit
// is given.
const DefaultPhoneLimit = 10

func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, res := requireString(request, "query")
	if res != nil {
		return res, nil
	}
	entries, err := s.directory.SearchFuzzy(ctx, query)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(nonNil(entries))
}

func (s *Server) handleRegex(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, res := requireString(request, "pattern")
	if res != nil {
		return res, nil
	}
	entries, err := s.directory.SearchRegex(ctx, pattern)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(map[string]interface{}{
		"count":   len(entries),
		"entries": nonNil(entries),
	})
}

func (s *Server) handleBrowse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	counts, err := s.directory.BrowseCategories(ctx)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(map[string]interface{}{
		"categories": counts,
		"total":      counts.Total(),
	})
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if name := getStringDefault(args, "category", ""); name != "" {
		category, err := s.directory.FindCategory(ctx, name)
		if err != nil {
			return toolError(err), nil
		}
		return jsonResult(ocfl.CategoryList{*category})
	}

	categories, err := s.directory.ListAll(ctx)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(ocfl.CategoryList(categories))
}

func (s *Server) handlePhoneLookup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, res := requireString(request, "query")
	if res != nil {
		return res, nil
	}
	args, _ := request.Params.Arguments.(map[string]interface{})
	limit := getIntDefault(args, "limit", DefaultPhoneLimit)
	if limit < 1 || limit > 15 {
		return mcp.NewToolResultError("limit must be between 1 and 15"), nil
	}

	entries, err := s.directory.LookupFlat(ctx, query)
	if err != nil {
		return toolError(err), nil
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return jsonResult(nonNil(entries))
}

// requireString returns a non-empty string argument, or a tool error
// result naming the missing parameter.
func requireString(request mcp.CallToolRequest, key string) (string, *mcp.CallToolResult) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return "", mcp.NewToolResultError("invalid arguments")
	}
	val, ok := args[key].(string)
	if !ok || val == "" {
		return "", mcp.NewToolResultError(fmt.Sprintf("%s parameter is required", key))
	}
	return val, nil
}

// toolError reports a failed call to the client as a tool result, so the
// model sees the message instead of a protocol error.
func toolError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(ocfl.ErrorMessage(err))
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func nonNil(entries []ocfl.Entry) []ocfl.Entry {
	if entries == nil {
		return []ocfl.Entry{}
	}
	return entries
}

func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
