package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStoreContract exercises the behaviour every Store adapter must share.
// The store is emptied first.
func testStoreContract(t *testing.T, store Store) {
	ctx := context.Background()
	_, err := store.DeleteAll(ctx)
	require.NoError(t, err)

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})

	t.Run("insert assigns id", func(t *testing.T) {
		b := New("First")
		id, err := store.Insert(ctx, &b)
		require.NoError(t, err)
		assert.True(t, store.ValidID(id))
		assert.Equal(t, id, b.ID)

		got, err := store.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "First", got.Title)
		assert.Empty(t, got.Comments)
		assert.Equal(t, 0, got.CommentCount)
	})

	t.Run("find all keeps insertion order", func(t *testing.T) {
		b := New("Second")
		_, err := store.Insert(ctx, &b)
		require.NoError(t, err)

		all, err := store.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "First", all[0].Title)
		assert.Equal(t, "Second", all[1].Title)
	})

	t.Run("save replaces comments", func(t *testing.T) {
		b := New("Commented")
		id, err := store.Insert(ctx, &b)
		require.NoError(t, err)

		b.AddComment("one")
		b.AddComment("two")
		require.NoError(t, store.Save(ctx, b))

		got, err := store.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, got.Comments)
		assert.Equal(t, 2, got.CommentCount)
	})

	t.Run("save of unknown book", func(t *testing.T) {
		err := store.Save(ctx, Book{ID: NewID(), Title: "ghost"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("find unknown", func(t *testing.T) {
		_, err := store.FindByID(ctx, NewID())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete by id", func(t *testing.T) {
		b := New("Doomed")
		id, err := store.Insert(ctx, &b)
		require.NoError(t, err)

		removed, err := store.DeleteByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = store.DeleteByID(ctx, id)
		require.NoError(t, err)
		assert.False(t, removed)

		_, err = store.FindByID(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete all", func(t *testing.T) {
		n, err := store.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		n, err = store.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		all, err := store.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})
}
