// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package user

import "context"

// Repository defines the persistence contract for user accounts and their
// friend edges. Two implementations exist: PostgreSQL and in-memory.
//
// Identity rules shared by both backends:
//   - Create rejects entities that already carry a non-zero id (ALREADY_EXISTS)
//     and assigns the next id itself, strictly increasing, never reused.
//   - Update rejects a zero or unknown id (NOT_FOUND) and replaces the full
//     base record.
type Repository interface {
	// FindAll returns every user ordered ascending by id, friend edges attached.
	FindAll(ctx context.Context) ([]*User, error)

	// FindByID returns one user with friend edges attached, or NOT_FOUND.
	FindByID(ctx context.Context, id int) (*User, error)

	// Create persists a new user and returns it with the assigned id.
	Create(ctx context.Context, user *User) (*User, error)

	// Update replaces the base record of an existing user.
	Update(ctx context.Context, user *User) (*User, error)

	// AddFriend inserts the directed (userID, friendID) edge. Inserting an
	// existing edge is a no-op.
	AddFriend(ctx context.Context, userID, friendID int) error

	// RemoveFriend deletes the directed (userID, friendID) edge. The
	// relational backend treats a missing edge as a no-op; the in-memory
	// backend reports it as NOT_FOUND with friendship-specific wording.
	RemoveFriend(ctx context.Context, userID, friendID int) error
}
