// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package film

import (
	"context"
	"sort"
	"sync"

	"github.com/kpetrov/filmotek/internal/platform/apperr"
	"github.com/kpetrov/filmotek/internal/reference"
)

// MemoryRepository implements [Repository] with plain maps. It backs the
// in-memory storage mode and the unit tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	films  map[int]*Film
	likes  map[int]map[int]struct{}
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		films:  make(map[int]*Film),
		likes:  make(map[int]map[int]struct{}),
		nextID: 1,
	}
}

func (repository *MemoryRepository) FindAll(_ context.Context) ([]*Film, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	films := make([]*Film, 0, len(repository.films))
	for _, entry := range repository.films {
		films = append(films, repository.clone(entry))
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })

	return films, nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id int) (*Film, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	entry, ok := repository.films[id]
	if !ok {
		return nil, apperr.NotFound("film")
	}
	return repository.clone(entry), nil
}

func (repository *MemoryRepository) Create(_ context.Context, entry *Film) (*Film, error) {
	if entry.ID != 0 {
		return nil, apperr.AlreadyExists("film already exists")
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored := *entry
	stored.ID = repository.nextID
	repository.nextID++
	stored.Genres = normalizeGenres(entry.Genres)
	repository.films[stored.ID] = &stored

	return repository.clone(&stored), nil
}

func (repository *MemoryRepository) Update(_ context.Context, entry *Film) (*Film, error) {
	if entry.ID == 0 {
		return nil, apperr.NotFound("film")
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.films[entry.ID]; !ok {
		return nil, apperr.NotFound("film")
	}

	stored := *entry
	stored.Genres = normalizeGenres(entry.Genres)
	repository.films[stored.ID] = &stored

	return repository.clone(&stored), nil
}

func (repository *MemoryRepository) AddLike(_ context.Context, filmID, userID int) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	edges, ok := repository.likes[filmID]
	if !ok {
		edges = make(map[int]struct{})
		repository.likes[filmID] = edges
	}
	edges[userID] = struct{}{}

	return nil
}

func (repository *MemoryRepository) RemoveLike(_ context.Context, filmID, userID int) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	delete(repository.likes[filmID], userID)
	return nil
}

// clone copies an entity and attaches its like edges so callers never see
// internal state.
func (repository *MemoryRepository) clone(entry *Film) *Film {
	copied := *entry
	copied.Genres = append([]reference.Genre{}, entry.Genres...)
	copied.Likes = make([]int, 0, len(repository.likes[entry.ID]))
	for userID := range repository.likes[entry.ID] {
		copied.Likes = append(copied.Likes, userID)
	}
	sort.Ints(copied.Likes)

	return &copied
}

// normalizeGenres deduplicates by genre id and sorts ascending, matching
// how the relational backend materializes the association.
func normalizeGenres(genres []reference.Genre) []reference.Genre {
	seen := make(map[int]struct{}, len(genres))
	normalized := make([]reference.Genre, 0, len(genres))

	for _, genre := range genres {
		if _, ok := seen[genre.ID]; ok {
			continue
		}
		seen[genre.ID] = struct{}{}
		normalized = append(normalized, genre)
	}
	sort.Slice(normalized, func(i, j int) bool { return normalized[i].ID < normalized[j].ID })

	return normalized
}
