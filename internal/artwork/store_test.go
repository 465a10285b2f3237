package artwork

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesBlobAndReturnsPublicRef(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	ref, err := store.Save("player", 1, "portrait.PNG", strings.NewReader("blob"))
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/player_1.png", ref)

	data, err := os.ReadFile(filepath.Join(dir, "player_1.png"))
	require.NoError(t, err)
	assert.Equal(t, "blob", string(data))
}

func TestSaveReplacesPreviousArtwork(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	_, err := store.Save("enemy", 3, "old.png", strings.NewReader("old"))
	require.NoError(t, err)

	ref, err := store.Save("enemy", 3, "new.png", strings.NewReader("new"))
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/enemy_3.png", ref)

	data, err := os.ReadFile(filepath.Join(dir, "enemy_3.png"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	// The stored name is derived from kind and identity, so only one
	// file exists for the entity.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	_, err := store.Save("player", 1, "malware.exe", strings.NewReader("nope"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveCreatesUploadsDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "static", "uploads")
	store := New(dir)

	_, err := store.Save("player", 1, "portrait.jpg", strings.NewReader("blob"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "player_1.jpg"))
	assert.NoError(t, err)
}
