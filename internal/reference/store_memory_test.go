// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package reference_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpetrov/filmotek/internal/platform/apperr"
	"github.com/kpetrov/filmotek/internal/reference"
)

func seededRepo() *reference.MemoryRepository {
	return reference.NewMemoryRepository(reference.DefaultGenres(), reference.DefaultMPA())
}

/*
TestMemoryRepository_Genres verifies genre listing order and lookups.
*/
func TestMemoryRepository_Genres(t *testing.T) {
	repo := seededRepo()
	ctx := context.Background()

	// 1. Listing is ordered ascending by id
	genres, err := repo.ListGenres(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 6)
	assert.Equal(t, "Comedy", genres[0].Name)
	assert.Equal(t, "Action", genres[5].Name)
	for index, genre := range genres {
		assert.Equal(t, index+1, genre.ID)
	}

	// 2. Lookup by id
	genre, err := repo.GetGenreByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Thriller", genre.Name)

	// 3. Unknown id
	_, err = repo.GetGenreByID(ctx, 99)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestMemoryRepository_MPA verifies MPA listing order and lookups.
*/
func TestMemoryRepository_MPA(t *testing.T) {
	repo := seededRepo()
	ctx := context.Background()

	ratings, err := repo.ListMPA(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 5)
	assert.Equal(t, "G", ratings[0].Name)
	assert.Equal(t, "NC-17", ratings[4].Name)

	rating, err := repo.GetMPAByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "PG-13", rating.Name)

	_, err = repo.GetMPAByID(ctx, 99)
	assert.True(t, apperr.IsNotFound(err))
}
