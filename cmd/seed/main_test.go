package main

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"bookcatalog/internal/book"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_InsertsBooksWithConsistentCounts(t *testing.T) {
	ctx := context.Background()
	store := book.NewMemoryRepo()

	n, err := seed(ctx, store, 25, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 25)
	for _, b := range all {
		assert.NotEmpty(t, b.Title)
		assert.Equal(t, len(b.Comments), b.CommentCount)
	}
}

func TestSeed_StopsOnStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := book.NewMockStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return("id-1", nil),
		store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return("", errors.New("disk full")),
	)

	n, err := seed(context.Background(), store, 5, rand.New(rand.NewSource(1)))
	assert.Equal(t, 1, n)
	assert.ErrorContains(t, err, "disk full")
}
