// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package reference

import "context"

// Repository defines the read-only data access contract for reference data.
//
// List results are ordered ascending by id; lookups fail with a NOT_FOUND
// application error when the id is absent.
type Repository interface {
	ListGenres(ctx context.Context) ([]Genre, error)
	GetGenreByID(ctx context.Context, id int) (*Genre, error)

	ListMPA(ctx context.Context) ([]MPA, error)
	GetMPAByID(ctx context.Context, id int) (*MPA, error)
}
