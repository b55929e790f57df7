// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissesEmptyStore(t *testing.T) {
	s := openStore(t)

	_, ok, err := s.Get(context.Background(), "deadbeef", 1, 2400)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	png := []byte("fake png bytes")

	require.NoError(t, s.Put(ctx, "deadbeef", 3, 2400, png))

	got, ok, err := s.Get(ctx, "deadbeef", 3, 2400)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, png, got)

	// different width is a distinct key
	_, ok, err = s.Get(ctx, "deadbeef", 3, 1200)
	require.NoError(t, err)
	assert.False(t, ok)

	// different hash misses too
	_, ok, err = s.Get(ctx, "cafef00d", 3, 2400)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutReplaces(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "deadbeef", 1, 2400, []byte("old")))
	require.NoError(t, s.Put(ctx, "deadbeef", 1, 2400, []byte("new")))

	got, ok, err := s.Get(ctx, "deadbeef", 1, 2400)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

func TestPurge(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "deadbeef", 1, 2400, []byte("a")))
	require.NoError(t, s.Put(ctx, "deadbeef", 2, 2400, []byte("b")))
	require.NoError(t, s.Put(ctx, "other", 1, 2400, []byte("c")))

	require.NoError(t, s.Purge(ctx, "deadbeef"))

	_, ok, err := s.Get(ctx, "deadbeef", 1, 2400)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.Get(ctx, "other", 1, 2400)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashFileChangesWithContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	h1, err := HashFile(path)
	require.NoError(t, err)
	assert.Len(t, h1, 64)

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
	h2, err := HashFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
