// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package film_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpetrov/filmotek/internal/film"
	"github.com/kpetrov/filmotek/internal/platform/apperr"
	"github.com/kpetrov/filmotek/internal/reference"
	"github.com/kpetrov/filmotek/pkg/date"
)

func validEntry() *film.Film {
	return &film.Film{
		Name:        "The Matrix",
		Description: "A hacker discovers the nature of his reality.",
		ReleaseDate: date.New(1999, time.March, 31),
		Duration:    136,
		MPA:         reference.MPA{ID: 4, Name: "R"},
	}
}

/*
TestMemoryRepository_Create verifies identity assignment on creation.
*/
func TestMemoryRepository_Create(t *testing.T) {
	repo := film.NewMemoryRepository()
	ctx := context.Background()

	// 1. Ids are assigned sequentially starting at 1
	first, err := repo.Create(ctx, validEntry())
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := repo.Create(ctx, validEntry())
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	// 2. A caller-supplied id is rejected
	withID := validEntry()
	withID.ID = 42
	_, err = repo.Create(ctx, withID)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "ALREADY_EXISTS", ae.Code)
}

/*
TestMemoryRepository_Update verifies the identity rules on update.
*/
func TestMemoryRepository_Update(t *testing.T) {
	repo := film.NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, validEntry())
	require.NoError(t, err)

	// 1. Round-trip update
	created.Duration = 150
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, 150, updated.Duration)

	// 2. Zero id is a NotFound, not a create
	fresh := validEntry()
	_, err = repo.Update(ctx, fresh)
	assert.True(t, apperr.IsNotFound(err))

	// 3. Unknown id
	fresh.ID = 999
	_, err = repo.Update(ctx, fresh)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestMemoryRepository_GenreNormalization verifies deduplication and ascending
ordering of the genre association.
*/
func TestMemoryRepository_GenreNormalization(t *testing.T) {
	repo := film.NewMemoryRepository()
	ctx := context.Background()

	entry := validEntry()
	entry.Genres = []reference.Genre{
		{ID: 4, Name: "Thriller"},
		{ID: 1, Name: "Comedy"},
		{ID: 4, Name: "Thriller"},
		{ID: 2, Name: "Drama"},
	}

	created, err := repo.Create(ctx, entry)
	require.NoError(t, err)

	require.Len(t, created.Genres, 3)
	assert.Equal(t, []reference.Genre{
		{ID: 1, Name: "Comedy"},
		{ID: 2, Name: "Drama"},
		{ID: 4, Name: "Thriller"},
	}, created.Genres)
}

/*
TestMemoryRepository_Likes verifies deduplication and idempotent removal of
like edges.
*/
func TestMemoryRepository_Likes(t *testing.T) {
	repo := film.NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, validEntry())
	require.NoError(t, err)

	// 1. Duplicate likes do not double count
	require.NoError(t, repo.AddLike(ctx, created.ID, 7))
	require.NoError(t, repo.AddLike(ctx, created.ID, 7))
	require.NoError(t, repo.AddLike(ctx, created.ID, 9))

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 9}, stored.Likes)
	assert.Equal(t, 2, stored.LikeCount())

	// 2. Removal returns the set to its prior state
	require.NoError(t, repo.RemoveLike(ctx, created.ID, 9))
	stored, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, stored.Likes)

	// 3. Removing a never-added like is not an error
	require.NoError(t, repo.RemoveLike(ctx, created.ID, 404))
}

/*
TestMemoryRepository_CloneIsolation verifies that mutating a returned entity
does not leak into the store.
*/
func TestMemoryRepository_CloneIsolation(t *testing.T) {
	repo := film.NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, validEntry())
	require.NoError(t, err)

	created.Name = "mutated"
	created.Likes = append(created.Likes, 777)

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", stored.Name)
	assert.Empty(t, stored.Likes)
}
