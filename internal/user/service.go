// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package user

import (
	"context"
	"log/slog"

	"github.com/kpetrov/filmotek/internal/platform/validate"
	"github.com/kpetrov/filmotek/pkg/date"
	"github.com/kpetrov/filmotek/pkg/slice"
)

// # Service Layer

// Service orchestrates the business logic for accounts and the friendship
// graph. It acts as the primary entry point for profile management and the
// social read paths.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Profile Lookups

// List returns every registered user ordered by id ascending.
func (service *Service) List(ctx context.Context) ([]*User, error) {
	return service.repo.FindAll(ctx)
}

// Get fetches a single user by id.
func (service *Service) Get(ctx context.Context, id int) (*User, error) {
	return service.repo.FindByID(ctx, id)
}

// # Profile Management

/*
Create registers a new user account.

Description: Performs the field validation chain, substitutes the login
for a blank display name, and persists the profile. The store assigns
the identity; a caller-supplied id is rejected.

Parameters:
  - ctx: context.Context
  - account: *User (The profile to be persisted)

Returns:
  - *User: The persisted profile with its assigned id
  - error: Validation, AlreadyExists or persistence errors
*/
func (service *Service) Create(ctx context.Context, account *User) (*User, error) {
	if err := validateUser(account); err != nil {
		return nil, err
	}
	substituteName(account)

	created, err := service.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_created",
		slog.Int("user_id", created.ID),
		slog.String("login", created.Login),
	)
	return created, nil
}

/*
Update replaces an existing user profile.

Description: Runs the same validation chain as Create, including the
display-name substitution. The id must reference an existing account.

Parameters:
  - ctx: context.Context
  - account: *User (Updated attributes, id required)

Returns:
  - *User: The persisted profile
  - error: Validation, NotFound or persistence errors
*/
func (service *Service) Update(ctx context.Context, account *User) (*User, error) {
	if err := validateUser(account); err != nil {
		return nil, err
	}
	substituteName(account)

	updated, err := service.repo.Update(ctx, account)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_updated", slog.Int("user_id", updated.ID))
	return updated, nil
}

// # Friendship Graph

/*
AddFriend stores one directed friend edge from userID to friendID.

Description: Both accounts are resolved first; a missing account on
either side raises NotFound. The edge is one-directional; symmetry
requires an explicit reciprocal call. Re-adding an existing edge is
a no-op.

Parameters:
  - ctx: context.Context
  - userID: int (Edge origin)
  - friendID: int (Edge target)

Returns:
  - error: NotFound or persistence errors
*/
func (service *Service) AddFriend(ctx context.Context, userID, friendID int) error {
	if err := service.resolvePair(ctx, userID, friendID); err != nil {
		return err
	}

	if err := service.repo.AddFriend(ctx, userID, friendID); err != nil {
		return err
	}

	service.logger.Info("friend_added",
		slog.Int("user_id", userID),
		slog.Int("friend_id", friendID),
	)
	return nil
}

// RemoveFriend deletes the directed edge from userID to friendID. Both
// accounts must exist. Whether a missing edge is an error depends on the
// storage backend; see [Repository].
func (service *Service) RemoveFriend(ctx context.Context, userID, friendID int) error {
	if err := service.resolvePair(ctx, userID, friendID); err != nil {
		return err
	}

	if err := service.repo.RemoveFriend(ctx, userID, friendID); err != nil {
		return err
	}

	service.logger.Info("friend_removed",
		slog.Int("user_id", userID),
		slog.Int("friend_id", friendID),
	)
	return nil
}

// Friends returns the accounts reachable by an outgoing edge of the given
// user, ordered by id ascending.
func (service *Service) Friends(ctx context.Context, userID int) ([]*User, error) {
	account, err := service.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return service.resolveAll(ctx, account.Friends)
}

/*
MutualFriends returns the accounts present in both users' friend lists.

Description: Resolves both accounts, intersects their outgoing edge sets
and hydrates the shared ids. Two users with no overlap yield an empty
slice, not an error.

Parameters:
  - ctx: context.Context
  - userID: int
  - otherID: int

Returns:
  - []*User: Shared friends ordered by id ascending
  - error: NotFound or persistence errors
*/
func (service *Service) MutualFriends(ctx context.Context, userID, otherID int) ([]*User, error) {
	account, err := service.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	other, err := service.repo.FindByID(ctx, otherID)
	if err != nil {
		return nil, err
	}

	return service.resolveAll(ctx, slice.Intersect(account.Friends, other.Friends))
}

// # Internal Helpers

// resolvePair confirms both accounts exist before a graph mutation.
func (service *Service) resolvePair(ctx context.Context, userID, friendID int) error {
	if _, err := service.repo.FindByID(ctx, userID); err != nil {
		return err
	}
	if _, err := service.repo.FindByID(ctx, friendID); err != nil {
		return err
	}
	return nil
}

// resolveAll hydrates a list of user ids into full profiles.
func (service *Service) resolveAll(ctx context.Context, ids []int) ([]*User, error) {
	users := make([]*User, 0, len(ids))
	for _, id := range ids {
		account, err := service.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		users = append(users, account)
	}
	return users, nil
}

// validateUser runs the profile validation chain. The first failing rule
// wins; rules are checked in the order email, login, birthday.
func validateUser(account *User) error {
	validator := &validate.Validator{}

	validator.Required(FieldEmail, account.Email, "Email must not be blank").
		Contains(FieldEmail, account.Email, "@", "Email must contain the @ character")

	validator.Required(FieldLogin, account.Login, "Login must not be blank").
		NoSpaces(FieldLogin, account.Login, "Login must not contain spaces")

	validator.NotAfter(FieldBirthday, account.Birthday.Time, date.Today().Time,
		"Birthday must not be in the future")

	return validator.Err()
}

// substituteName copies the login into a blank display name. This happens
// once, before persistence, never on the read path.
func substituteName(account *User) {
	if account.Name == "" {
		account.Name = account.Login
	}
}
