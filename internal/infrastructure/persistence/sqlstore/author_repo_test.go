package sqlstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/author"
)

func TestAuthorRepository(t *testing.T) {
	repo := NewAuthorRepository(newTestDB(t))
	ctx := context.Background()

	poe := &author.Author{ID: 150, Name: "Edgar Allen Poe", DateOfBirth: "1809-01-19", PlaceOfBirth: "Boston, Massachusetts"}
	require.NoError(t, repo.Create(ctx, poe))
	require.NoError(t, repo.Create(ctx, &author.Author{ID: 101, Name: "Emily Brontë"}))

	err := repo.Create(ctx, &author.Author{ID: 150, Name: "dup"})
	assert.ErrorIs(t, err, author.ErrAuthorDuplicate)

	got, err := repo.FindByID(ctx, 150)
	require.NoError(t, err)
	assert.Equal(t, "1809-01-19", got.DateOfBirth)

	got.Name = "Edgar Allan Poe"
	got.PlaceOfDeath = "Baltimore, Maryland"
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.FindByID(ctx, 150)
	require.NoError(t, err)
	assert.Equal(t, "Edgar Allan Poe", got.Name)
	assert.Equal(t, "Baltimore, Maryland", got.PlaceOfDeath)

	list, total, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, uint(101), list[0].ID)

	_, err = repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}
