// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package film

import "context"

// Repository defines the data access contract for the film catalog.
//
// # Identity Rules
//
// Create rejects an entity carrying a non-zero id (ALREADY_EXISTS); the
// store assigns the identity. Update requires a non-zero id that resolves
// to an existing row (NOT_FOUND otherwise).
//
// # Associations
//
// Create and Update replace the full genre association of the film. The
// relational implementation wraps the row write and the association
// replacement in one transaction; the in-memory implementation applies
// both in one step under its lock. Like edges are deduplicated by user id
// on both write and read; removing an absent like is a no-op.
type Repository interface {
	// FindAll returns every film ordered by id ascending, with genres,
	// MPA and likes attached.
	FindAll(ctx context.Context) ([]*Film, error)

	// FindByID returns one film with its associations attached.
	FindByID(ctx context.Context, id int) (*Film, error)

	Create(ctx context.Context, entry *Film) (*Film, error)
	Update(ctx context.Context, entry *Film) (*Film, error)

	AddLike(ctx context.Context, filmID, userID int) error
	RemoveLike(ctx context.Context, filmID, userID int) error
}
