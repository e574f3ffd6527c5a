// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package reference

import (
	"context"
	"sort"
	"sync"

	"github.com/kpetrov/filmotek/internal/platform/apperr"
)

// MemoryRepository implements [Repository] over seeded in-process maps.
//
// The maps are read-mostly; the mutex exists only because the repository is
// shared across request goroutines.
type MemoryRepository struct {
	mu     sync.RWMutex
	genres map[int]Genre
	mpa    map[int]MPA
}

// NewMemoryRepository seeds a map-backed reference store. Pass
// [DefaultGenres] and [DefaultMPA] for the canonical seed rows.
func NewMemoryRepository(genres []Genre, ratings []MPA) *MemoryRepository {
	repository := &MemoryRepository{
		genres: make(map[int]Genre, len(genres)),
		mpa:    make(map[int]MPA, len(ratings)),
	}
	for _, genre := range genres {
		repository.genres[genre.ID] = genre
	}
	for _, rating := range ratings {
		repository.mpa[rating.ID] = rating
	}
	return repository
}

func (repository *MemoryRepository) ListGenres(_ context.Context) ([]Genre, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	genres := make([]Genre, 0, len(repository.genres))
	for _, genre := range repository.genres {
		genres = append(genres, genre)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })

	return genres, nil
}

func (repository *MemoryRepository) GetGenreByID(_ context.Context, id int) (*Genre, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	genre, ok := repository.genres[id]
	if !ok {
		return nil, apperr.NotFound("genre")
	}
	return &genre, nil
}

func (repository *MemoryRepository) ListMPA(_ context.Context) ([]MPA, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	ratings := make([]MPA, 0, len(repository.mpa))
	for _, rating := range repository.mpa {
		ratings = append(ratings, rating)
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].ID < ratings[j].ID })

	return ratings, nil
}

func (repository *MemoryRepository) GetMPAByID(_ context.Context, id int) (*MPA, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	rating, ok := repository.mpa[id]
	if !ok {
		return nil, apperr.NotFound("mpa rating")
	}
	return &rating, nil
}
