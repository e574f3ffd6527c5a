// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package film

import (
	"context"
	"log/slog"
	"sort"

	"github.com/kpetrov/filmotek/internal/platform/apperr"
	"github.com/kpetrov/filmotek/internal/platform/validate"
	"github.com/kpetrov/filmotek/internal/reference"
	"github.com/kpetrov/filmotek/internal/user"
)

// UserDirectory resolves user accounts for like mutations. Satisfied by
// the user service.
type UserDirectory interface {
	Get(ctx context.Context, id int) (*user.User, error)
}

// ReferenceDirectory resolves genre and MPA references attached to films.
// Satisfied by the reference service.
type ReferenceDirectory interface {
	GetGenre(ctx context.Context, id int) (*reference.Genre, error)
	GetMPA(ctx context.Context, id int) (*reference.MPA, error)
}

// # Service Layer

// Service orchestrates the business logic for the film catalog, the likes
// relation and the popularity ranking. It acts as the primary entry point
// for catalog management.
type Service struct {
	repo   Repository
	users  UserDirectory
	refs   ReferenceDirectory
	cache  *RankingCache
	logger *slog.Logger
}

// NewService constructs a new [Service]. The cache is optional; a nil
// cache disables ranking memoization without changing any semantics.
func NewService(repo Repository, users UserDirectory, refs ReferenceDirectory, cache *RankingCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		refs:   refs,
		cache:  cache,
		logger: logger,
	}
}

// # Catalog Lookups

// List returns every catalog entry ordered by id ascending.
func (service *Service) List(ctx context.Context) ([]*Film, error) {
	return service.repo.FindAll(ctx)
}

// Get fetches a single film by id.
func (service *Service) Get(ctx context.Context, id int) (*Film, error) {
	return service.repo.FindByID(ctx, id)
}

// # Catalog Management

/*
Create registers a new catalog entry.

Description: Performs the field validation chain, resolves the MPA and
genre references (rejecting ids absent from the reference tables), and
persists the entry together with its genre association. The store
assigns the identity; a caller-supplied id is rejected.

Parameters:
  - ctx: context.Context
  - entry: *Film (The entry to be persisted)

Returns:
  - *Film: The persisted entry, hydrated with reference names
  - error: Validation, NotFound, AlreadyExists or persistence errors
*/
func (service *Service) Create(ctx context.Context, entry *Film) (*Film, error) {
	if err := validateFilm(entry); err != nil {
		return nil, err
	}
	if err := service.resolveReferences(ctx, entry); err != nil {
		return nil, err
	}

	created, err := service.repo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	service.invalidateRanking(ctx)
	service.logger.Info("film_created",
		slog.Int("film_id", created.ID),
		slog.String("name", created.Name),
	)
	return created, nil
}

/*
Update replaces an existing catalog entry.

Description: Runs the same validation and reference resolution as Create
and replaces the full genre association. The id must reference an
existing entry.

Parameters:
  - ctx: context.Context
  - entry: *Film (Updated attributes, id required)

Returns:
  - *Film: The persisted entry
  - error: Validation, NotFound or persistence errors
*/
func (service *Service) Update(ctx context.Context, entry *Film) (*Film, error) {
	if err := validateFilm(entry); err != nil {
		return nil, err
	}
	if err := service.resolveReferences(ctx, entry); err != nil {
		return nil, err
	}

	updated, err := service.repo.Update(ctx, entry)
	if err != nil {
		return nil, err
	}

	service.invalidateRanking(ctx)
	service.logger.Info("film_updated", slog.Int("film_id", updated.ID))
	return updated, nil
}

// # Likes

// AddLike stores one like edge from userID to filmID. Both the film and
// the user must exist. Liking the same film twice does not double count.
func (service *Service) AddLike(ctx context.Context, filmID, userID int) error {
	if err := service.resolvePair(ctx, filmID, userID); err != nil {
		return err
	}

	if err := service.repo.AddLike(ctx, filmID, userID); err != nil {
		return err
	}

	service.invalidateRanking(ctx)
	service.logger.Info("like_added",
		slog.Int("film_id", filmID),
		slog.Int("user_id", userID),
	)
	return nil
}

// RemoveLike deletes the like edge from userID to filmID. Both entities
// must exist; removing a never-added like is not an error.
func (service *Service) RemoveLike(ctx context.Context, filmID, userID int) error {
	if err := service.resolvePair(ctx, filmID, userID); err != nil {
		return err
	}

	if err := service.repo.RemoveLike(ctx, filmID, userID); err != nil {
		return err
	}

	service.invalidateRanking(ctx)
	service.logger.Info("like_removed",
		slog.Int("film_id", filmID),
		slog.Int("user_id", userID),
	)
	return nil
}

// # Popularity Ranking

/*
TopLiked returns the count most-liked films.

Description: Sorts the catalog descending by like-count, breaking ties
by ascending id for determinism, and takes the first count entries
(fewer if the catalog is smaller). Results are memoized in the ranking
cache when one is configured.

Parameters:
  - ctx: context.Context
  - count: int (Must be positive)

Returns:
  - []*Film: The ranked films
  - error: Validation if count is not positive, NotFound on an empty catalog
*/
func (service *Service) TopLiked(ctx context.Context, count int) ([]*Film, error) {
	if count <= 0 {
		return nil, apperr.ValidationError(FieldCount, "Count must be positive")
	}

	if service.cache != nil {
		if cached := service.cache.Get(ctx, count); cached != nil {
			return cached, nil
		}
	}

	films, err := service.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(films) == 0 {
		return nil, apperr.NotFoundMsg("film catalog is empty")
	}

	sort.Slice(films, func(i, j int) bool {
		if films[i].LikeCount() != films[j].LikeCount() {
			return films[i].LikeCount() > films[j].LikeCount()
		}
		return films[i].ID < films[j].ID
	})

	if count < len(films) {
		films = films[:count]
	}

	if service.cache != nil {
		service.cache.Set(ctx, count, films)
	}
	return films, nil
}

// # Internal Helpers

// resolvePair confirms the film and the user exist before a like mutation.
func (service *Service) resolvePair(ctx context.Context, filmID, userID int) error {
	if _, err := service.repo.FindByID(ctx, filmID); err != nil {
		return err
	}
	if _, err := service.users.Get(ctx, userID); err != nil {
		return err
	}
	return nil
}

// resolveReferences hydrates the MPA and genre references from the lookup
// tables, rejecting ids that do not exist there.
func (service *Service) resolveReferences(ctx context.Context, entry *Film) error {
	rating, err := service.refs.GetMPA(ctx, entry.MPA.ID)
	if err != nil {
		return err
	}
	entry.MPA = *rating

	for index, genre := range entry.Genres {
		resolved, err := service.refs.GetGenre(ctx, genre.ID)
		if err != nil {
			return err
		}
		entry.Genres[index] = *resolved
	}
	return nil
}

func (service *Service) invalidateRanking(ctx context.Context) {
	if service.cache != nil {
		service.cache.Invalidate(ctx)
	}
}

// validateFilm runs the catalog validation chain. The first failing rule
// wins; rules are checked in the order name, description, release date,
// duration, mpa.
func validateFilm(entry *Film) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, entry.Name, "Name must not be blank")
	validator.MaxLen(FieldDescription, entry.Description, MaxDescriptionLen,
		"Description must not exceed 200 characters")
	validator.NotBefore(FieldReleaseDate, entry.ReleaseDate.Time, EarliestRelease.Time,
		"Release date must not precede 1895-12-28")
	validator.Positive(FieldDuration, entry.Duration, "Duration must be positive")
	validator.Positive(FieldMPA, entry.MPA.ID, "MPA rating is required")

	return validator.Err()
}
