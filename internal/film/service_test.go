// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package film_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpetrov/filmotek/internal/film"
	"github.com/kpetrov/filmotek/internal/platform/apperr"
	"github.com/kpetrov/filmotek/internal/reference"
	"github.com/kpetrov/filmotek/internal/user"
	"github.com/kpetrov/filmotek/pkg/date"
)

// fixture wires a film service onto in-memory stores with seeded
// reference data.
type fixture struct {
	films *film.Service
	users *user.Service
}

func newFixture() *fixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	refs := reference.NewService(
		reference.NewMemoryRepository(reference.DefaultGenres(), reference.DefaultMPA()),
		logger,
	)
	users := user.NewService(user.NewMemoryRepository(), logger)
	films := film.NewService(film.NewMemoryRepository(), users, refs, nil, logger)

	return &fixture{films: films, users: users}
}

func (f *fixture) createUser(t *testing.T) *user.User {
	t.Helper()
	created, err := f.users.Create(context.Background(), &user.User{
		Email:    "viewer@example.com",
		Login:    "viewer",
		Birthday: date.New(1985, time.June, 1),
	})
	require.NoError(t, err)
	return created
}

/*
TestService_Create_Validation verifies the field rules and their order.
*/
func TestService_Create_Validation(t *testing.T) {
	longDescription := make([]byte, film.MaxDescriptionLen+1)
	for index := range longDescription {
		longDescription[index] = 'x'
	}

	tests := []struct {
		name      string
		mutate    func(*film.Film)
		wantField string
	}{
		{"blank_name", func(f *film.Film) { f.Name = "" }, "name"},
		{"long_description", func(f *film.Film) { f.Description = string(longDescription) }, "description"},
		{"prehistoric_release", func(f *film.Film) { f.ReleaseDate = date.New(1850, time.January, 1) }, "releaseDate"},
		{"zero_duration", func(f *film.Film) { f.Duration = 0 }, "duration"},
		{"negative_duration", func(f *film.Film) { f.Duration = -10 }, "duration"},
		{"missing_mpa", func(f *film.Film) { f.MPA = reference.MPA{} }, "mpa"},
		// Name is checked before duration, so a doubly broken input reports name.
		{"first_failure_wins", func(f *film.Film) { f.Name = ""; f.Duration = 0 }, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			entry := validEntry()
			tt.mutate(entry)

			_, err := f.films.Create(context.Background(), entry)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, tt.wantField, ae.Field)
		})
	}
}

/*
TestService_Create_BoundaryDates verifies the release-date floor is
inclusive.
*/
func TestService_Create_BoundaryDates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// The first film screening date itself is valid
	entry := validEntry()
	entry.ReleaseDate = date.New(1895, time.December, 28)
	_, err := f.films.Create(ctx, entry)
	assert.NoError(t, err)

	// One day earlier is not
	entry = validEntry()
	entry.ReleaseDate = date.New(1895, time.December, 27)
	_, err = f.films.Create(ctx, entry)
	assert.True(t, apperr.IsValidation(err))
}

/*
TestService_Create_ResolvesReferences verifies that MPA and genre ids are
hydrated from the reference tables and that unknown ids are rejected.
*/
func TestService_Create_ResolvesReferences(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// 1. Names are filled in from the reference data
	entry := validEntry()
	entry.MPA = reference.MPA{ID: 1}
	entry.Genres = []reference.Genre{{ID: 2}}

	created, err := f.films.Create(ctx, entry)
	require.NoError(t, err)
	assert.Equal(t, "G", created.MPA.Name)
	require.Len(t, created.Genres, 1)
	assert.Equal(t, "Drama", created.Genres[0].Name)

	// 2. Unknown MPA id
	entry = validEntry()
	entry.MPA = reference.MPA{ID: 99}
	_, err = f.films.Create(ctx, entry)
	assert.True(t, apperr.IsNotFound(err))

	// 3. Unknown genre id
	entry = validEntry()
	entry.Genres = []reference.Genre{{ID: 99}}
	_, err = f.films.Create(ctx, entry)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_Likes verifies entity resolution around like mutations.
*/
func TestService_Likes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	entry, err := f.films.Create(ctx, validEntry())
	require.NoError(t, err)
	viewer := f.createUser(t)

	// 1. Both sides must exist
	err = f.films.AddLike(ctx, entry.ID, 999)
	assert.True(t, apperr.IsNotFound(err))
	err = f.films.AddLike(ctx, 999, viewer.ID)
	assert.True(t, apperr.IsNotFound(err))

	// 2. Add then remove returns the like set to its prior state
	require.NoError(t, f.films.AddLike(ctx, entry.ID, viewer.ID))

	stored, err := f.films.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{viewer.ID}, stored.Likes)

	require.NoError(t, f.films.RemoveLike(ctx, entry.ID, viewer.ID))

	stored, err = f.films.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Likes)

	// 3. Removing a never-added like is not an error
	require.NoError(t, f.films.RemoveLike(ctx, entry.ID, viewer.ID))
}

/*
TestService_TopLiked verifies the popularity ranking.
*/
func TestService_TopLiked(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// 1. Non-positive count
	_, err := f.films.TopLiked(ctx, 0)
	assert.True(t, apperr.IsValidation(err))
	_, err = f.films.TopLiked(ctx, -5)
	assert.True(t, apperr.IsValidation(err))

	// 2. Empty catalog
	_, err = f.films.TopLiked(ctx, 10)
	assert.True(t, apperr.IsNotFound(err))

	// 3. A single unliked film still ranks
	first, err := f.films.Create(ctx, validEntry())
	require.NoError(t, err)

	ranked, err := f.films.TopLiked(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, first.ID, ranked[0].ID)

	// 4. Like counts dominate, capped at count
	second, err := f.films.Create(ctx, validEntry())
	require.NoError(t, err)
	third, err := f.films.Create(ctx, validEntry())
	require.NoError(t, err)

	alice := f.createUser(t)
	bob := f.createUser(t)

	require.NoError(t, f.films.AddLike(ctx, second.ID, alice.ID))
	require.NoError(t, f.films.AddLike(ctx, second.ID, bob.ID))
	require.NoError(t, f.films.AddLike(ctx, third.ID, alice.ID))

	ranked, err = f.films.TopLiked(ctx, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, second.ID, ranked[0].ID)
	assert.Equal(t, third.ID, ranked[1].ID)

	// 5. Ties break by ascending id
	require.NoError(t, f.films.AddLike(ctx, first.ID, alice.ID))

	ranked, err = f.films.TopLiked(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, second.ID, ranked[0].ID)
	assert.Equal(t, first.ID, ranked[1].ID)
	assert.Equal(t, third.ID, ranked[2].ID)
}
