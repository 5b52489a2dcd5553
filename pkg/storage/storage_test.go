package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGet(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Set("item:1", record{Name: "tomato", Count: 3}))

	var got record
	require.NoError(t, store.Get("item:1", &got))
	assert.Equal(t, record{Name: "tomato", Count: 3}, got)
}

func TestGetMissing(t *testing.T) {
	store := testStore(t)

	var got record
	err := store.Get("nope", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHasAndDelete(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Set("item:1", record{Name: "rice"}))

	ok, err := store.Has("item:1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Delete("item:1"))

	ok, err = store.Has("item:1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListPrefix(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Set("recipe:a", record{}))
	require.NoError(t, store.Set("recipe:b", record{}))
	require.NoError(t, store.Set("pantry:1", record{}))

	keys, err := store.List("recipe:")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"recipe:a", "recipe:b"}, keys)

	keys, err = store.List("chat:")
	require.NoError(t, err)
	assert.Empty(t, keys)
}
