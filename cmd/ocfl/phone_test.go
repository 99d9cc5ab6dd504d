package main_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ocfl/ocfl"
	main "github.com/ocfl/ocfl/cmd/ocfl"
	"github.com/ocfl/ocfl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints name, phone and email", func(t *testing.T) {
		t.Parallel()

		deps, stdout := newDeps(&mock.DirectoryService{
			LookupFlatFn: func(context.Context, string) ([]ocfl.Entry, error) {
				return []ocfl.Entry{fireRescue, solidWaste}, nil
			},
		}, false)

		err := (&main.PhoneCmd{Query: []string{"fire"}}).Run(deps)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "Fire Rescue")
		assert.True(t, strings.HasSuffix(lines[0], " (407) 836-9000 | fire@ocfl.net"))
		assert.Contains(t, lines[1], "Solid Waste")
		assert.True(t, strings.HasSuffix(lines[1], " (407) 836-6601"))
	})

	t.Run("prints at most ten matches", func(t *testing.T) {
		t.Parallel()

		many := make([]ocfl.Entry, 15)
		for i := range many {
			many[i] = solidWaste
		}
		deps, stdout := newDeps(&mock.DirectoryService{
			LookupFlatFn: func(context.Context, string) ([]ocfl.Entry, error) {
				return many, nil
			},
		}, true)

		err := (&main.PhoneCmd{Query: []string{"waste"}}).Run(deps)

		require.NoError(t, err)
		var got []ocfl.Entry
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Len(t, got, 10)
	})

	t.Run("joins query words", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		deps, _ := newDeps(&mock.DirectoryService{
			LookupFlatFn: func(_ context.Context, query string) ([]ocfl.Entry, error) {
				gotQuery = query
				return nil, nil
			},
		}, false)

		err := (&main.PhoneCmd{Query: []string{"fire", "rescue"}}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "fire rescue", gotQuery)
	})

	t.Run("suggests a directory search when nothing matches", func(t *testing.T) {
		t.Parallel()

		deps, stdout := newDeps(&mock.DirectoryService{
			LookupFlatFn: func(context.Context, string) ([]ocfl.Entry, error) {
				return nil, nil
			},
		}, false)

		err := (&main.PhoneCmd{Query: []string{"zzz"}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No results for 'zzz'. Try 'ocfl directory zzz'.")
	})
}
