package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CommitAndCurrent(t *testing.T) {
	store := NewStore[[]string]()

	_, ok := store.Current()
	assert.False(t, ok, "no snapshot before first commit")

	token := store.Begin()
	snapshot, applied := store.Commit(token, []string{"a", "b"})
	require.True(t, applied)
	assert.Equal(t, []string{"a", "b"}, snapshot.Data)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, snapshot.ID, current.ID)
}

func TestStore_StaleCommitDiscarded(t *testing.T) {
	store := NewStore[int]()

	first := store.Begin()
	second := store.Begin()

	// The newer load lands first
	fresh, applied := store.Commit(second, 2)
	require.True(t, applied)

	// The older load resolves late: its data must not overwrite newer state
	snapshot, applied := store.Commit(first, 1)
	assert.False(t, applied)
	assert.Equal(t, 2, snapshot.Data)
	assert.Equal(t, fresh.ID, snapshot.ID)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, 2, current.Data)
}

func TestStore_ReplacementIsWholesale(t *testing.T) {
	store := NewStore[[]int]()

	token := store.Begin()
	_, applied := store.Commit(token, []int{1, 2, 3})
	require.True(t, applied)

	token = store.Begin()
	snapshot, applied := store.Commit(token, []int{9})
	require.True(t, applied)
	assert.Equal(t, []int{9}, snapshot.Data)
}

func TestStore_SnapshotIDsDiffer(t *testing.T) {
	store := NewStore[int]()

	first, _ := store.Commit(store.Begin(), 1)
	second, _ := store.Commit(store.Begin(), 2)
	assert.NotEqual(t, first.ID, second.ID)
}
