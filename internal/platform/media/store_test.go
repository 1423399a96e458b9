package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WriteReadMove(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Write("player_images/158023.png", []byte("png")))
	assert.True(t, store.Exists("player_images/158023.png"))

	require.NoError(t, store.Move("player_images/158023.png", "players/158023.png"))
	assert.False(t, store.Exists("player_images/158023.png"))

	body, err := store.Read("players/158023.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), body)

	entries, err := os.ReadDir(filepath.Join(store.Root(), "players"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestStore_RejectsEscapingPaths(t *testing.T) {
	store := NewStore(t.TempDir())

	assert.ErrorIs(t, store.Write("", []byte("x")), ErrInvalidPath)
	_, err := store.Read(".")
	assert.ErrorIs(t, err, ErrInvalidPath)

	require.NoError(t, store.Write("../outside.png", []byte("x")))
	assert.True(t, store.Exists("outside.png"), "dot-dot segments are cleaned against the root")
}

func TestStore_RemoveDir(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Write("player_images/a.png", []byte("a")))

	removed, err := store.RemoveDir("player_images")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.RemoveDir("player_images")
	require.NoError(t, err)
	assert.False(t, removed)
}
