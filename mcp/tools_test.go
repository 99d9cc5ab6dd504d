package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/ocfl/ocfl"
	"github.com/ocfl/ocfl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

var (
	fireRescue   = ocfl.Entry{Name: "Fire Rescue", Phone: "(407) 836-9000"}
	animalServ   = ocfl.Entry{Name: "Animal Services", Phone: "(407) 254-9150"}
	customerServ = ocfl.Entry{Name: "311 Customer Service", Phone: "(407) 836-3111"}
)

func TestServer_HandleSearch(t *testing.T) {
	t.Parallel()

	t.Run("returns ranked entries as JSON", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		s := NewServer(&mock.DirectoryService{
			SearchFuzzyFn: func(_ context.Context, query string) ([]ocfl.Entry, error) {
				gotQuery = query
				return []ocfl.Entry{fireRescue}, nil
			},
		})

		res, err := s.handleSearch(context.Background(), callRequest("directory_search", map[string]interface{}{"query": "fire"}))

		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Equal(t, "fire", gotQuery)

		var entries []ocfl.Entry
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &entries))
		assert.Equal(t, []ocfl.Entry{fireRescue}, entries)
	})

	t.Run("renders no results as an empty array", func(t *testing.T) {
		t.Parallel()

		s := NewServer(&mock.DirectoryService{
			SearchFuzzyFn: func(context.Context, string) ([]ocfl.Entry, error) {
				return nil, nil
			},
		})

		res, err := s.handleSearch(context.Background(), callRequest("directory_search", map[string]interface{}{"query": "zzz"}))

		require.NoError(t, err)
		assert.Equal(t, "[]", resultText(t, res))
	})

	t.Run("reports a missing query as a tool error", func(t *testing.T) {
		t.Parallel()

		s := NewServer(&mock.DirectoryService{})

		res, err := s.handleSearch(context.Background(), callRequest("directory_search", map[string]interface{}{}))

		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "query parameter is required")
	})
}

func TestServer_HandleRegex(t *testing.T) {
	t.Parallel()

	t.Run("returns matches with a count", func(t *testing.T) {
		t.Parallel()

		s := NewServer(&mock.DirectoryService{
			SearchRegexFn: func(_ context.Context, pattern string) ([]ocfl.Entry, error) {
				return []ocfl.Entry{fireRescue, customerServ}, nil
			},
		})

		res, err := s.handleRegex(context.Background(), callRequest("directory_regex", map[string]interface{}{"pattern": `836-\d{4}`}))

		require.NoError(t, err)
		var got struct {
			Count   int          `json:"count"`
			Entries []ocfl.Entry `json:"entries"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		assert.Equal(t, 2, got.Count)
		assert.Equal(t, []ocfl.Entry{fireRescue, customerServ}, got.Entries)
	})

	t.Run("surfaces an invalid pattern message", func(t *testing.T) {
		t.Parallel()

		s := NewServer(&mock.DirectoryService{
			SearchRegexFn: func(context.Context, string) ([]ocfl.Entry, error) {
				return nil, ocfl.Errorf(ocfl.EINVALID, "invalid pattern %q", "[")
			},
		})

		res, err := s.handleRegex(context.Background(), callRequest("directory_regex", map[string]interface{}{"pattern": "["}))

		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Equal(t, `invalid pattern "["`, resultText(t, res))
	})
}

func TestServer_HandleBrowse(t *testing.T) {
	t.Parallel()

	s := NewServer(&mock.DirectoryService{
		BrowseCategoriesFn: func(context.Context) (ocfl.CategoryCounts, error) {
			return ocfl.CategoryCounts{
				{Name: "Utilities", Count: 2},
				{Name: "Public Safety", Count: 3},
			}, nil
		},
	})

	res, err := s.handleBrowse(context.Background(), callRequest("directory_browse", nil))

	require.NoError(t, err)
	var got struct {
		Categories map[string]int `json:"categories"`
		Total      int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Equal(t, map[string]int{"Utilities": 2, "Public Safety": 3}, got.Categories)
	assert.Equal(t, 5, got.Total)
}

func TestServer_HandleList(t *testing.T) {
	t.Parallel()

	t.Run("lists every category", func(t *testing.T) {
		t.Parallel()

		s := NewServer(&mock.DirectoryService{
			ListAllFn: func(context.Context) ([]ocfl.Category, error) {
				return []ocfl.Category{
					{Name: "Public Safety", Entries: []ocfl.Entry{fireRescue}},
					{Name: "Animals", Entries: []ocfl.Entry{animalServ}},
				}, nil
			},
		})

		res, err := s.handleList(context.Background(), callRequest("directory_list", map[string]interface{}{}))

		require.NoError(t, err)
		var got map[string][]ocfl.Entry
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		assert.Equal(t, map[string][]ocfl.Entry{
			"Public Safety": {fireRescue},
			"Animals":       {animalServ},
		}, got)
	})

	t.Run("resolves a single category", func(t *testing.T) {
		t.Parallel()

		var gotName string
		s := NewServer(&mock.DirectoryService{
			FindCategoryFn: func(_ context.Context, name string) (*ocfl.Category, error) {
				gotName = name
				return &ocfl.Category{Name: "Animals", Entries: []ocfl.Entry{animalServ}}, nil
			},
		})

		res, err := s.handleList(context.Background(), callRequest("directory_list", map[string]interface{}{"category": "animls"}))

		require.NoError(t, err)
		assert.Equal(t, "animls", gotName)
		var got map[string][]ocfl.Entry
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		assert.Equal(t, map[string][]ocfl.Entry{"Animals": {animalServ}}, got)
	})

	t.Run("reports an unknown category", func(t *testing.T) {
		t.Parallel()

		s := NewServer(&mock.DirectoryService{
			FindCategoryFn: func(context.Context, string) (*ocfl.Category, error) {
				return nil, ocfl.Errorf(ocfl.ENOTFOUND, "category %q not found", "Zoo")
			},
		})

		res, err := s.handleList(context.Background(), callRequest("directory_list", map[string]interface{}{"category": "Zoo"}))

		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Equal(t, `category "Zoo" not found`, resultText(t, res))
	})
}

func TestServer_HandlePhoneLookup(t *testing.T) {
	t.Parallel()

	many := make([]ocfl.Entry, 15)
	for i := range many {
		many[i] = fireRescue
	}
	s := NewServer(&mock.DirectoryService{
		LookupFlatFn: func(_ context.Context, query string) ([]ocfl.Entry, error) {
			if query == "311" {
				return []ocfl.Entry{customerServ}, nil
			}
			return many, nil
		},
	})

	tests := []struct {
		name string
		args map[string]interface{}
		want int
	}{
		{name: "short number", args: map[string]interface{}{"query": "311"}, want: 1},
		{name: "default limit", args: map[string]interface{}{"query": "fire"}, want: DefaultPhoneLimit},
		{name: "explicit limit", args: map[string]interface{}{"query": "fire", "limit": float64(3)}, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := s.handlePhoneLookup(context.Background(), callRequest("phone_lookup", tt.args))

			require.NoError(t, err)
			var entries []ocfl.Entry
			require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &entries))
			assert.Len(t, entries, tt.want)
		})
	}

	t.Run("rejects an out of range limit", func(t *testing.T) {
		t.Parallel()

		res, err := s.handlePhoneLookup(context.Background(), callRequest("phone_lookup", map[string]interface{}{"query": "fire", "limit": float64(50)}))

		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}
