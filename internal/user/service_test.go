// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package user_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpetrov/filmotek/internal/platform/apperr"
	"github.com/kpetrov/filmotek/internal/user"
	"github.com/kpetrov/filmotek/pkg/date"
)

func newService() *user.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return user.NewService(user.NewMemoryRepository(), logger)
}

/*
TestService_Create_Validation verifies the field rules and their order.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*user.User)
		wantField string
	}{
		{"blank_email", func(u *user.User) { u.Email = "" }, "email"},
		{"email_without_at", func(u *user.User) { u.Email = "ksenia.example.com" }, "email"},
		{"blank_login", func(u *user.User) { u.Login = "" }, "login"},
		{"login_with_space", func(u *user.User) { u.Login = "ksenia p" }, "login"},
		{"future_birthday", func(u *user.User) { u.Birthday = date.FromTime(time.Now().AddDate(1, 0, 0)) }, "birthday"},
		// Email is checked before login, so a doubly broken input reports email.
		{"first_failure_wins", func(u *user.User) { u.Email = ""; u.Login = "" }, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService()

			account := validAccount()
			tt.mutate(account)

			_, err := service.Create(context.Background(), account)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, tt.wantField, ae.Field)
		})
	}
}

/*
TestService_Create_NameSubstitution verifies that a blank display name is
replaced by the login once, at write time.
*/
func TestService_Create_NameSubstitution(t *testing.T) {
	service := newService()
	ctx := context.Background()

	account := validAccount()
	account.Name = ""

	created, err := service.Create(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, "ksenia", created.Name)

	// The stored record carries the substituted name too
	stored, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ksenia", stored.Name)
}

/*
TestService_Update verifies validation and the NotFound identity rule.
*/
func TestService_Update(t *testing.T) {
	service := newService()
	ctx := context.Background()

	created, err := service.Create(ctx, validAccount())
	require.NoError(t, err)

	// 1. Blank name substitutes login on update as well
	created.Name = ""
	updated, err := service.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "ksenia", updated.Name)

	// 2. Unknown id
	missing := validAccount()
	missing.ID = 404
	_, err = service.Update(ctx, missing)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_AddFriend verifies directed edges and account resolution.
*/
func TestService_AddFriend(t *testing.T) {
	service := newService()
	ctx := context.Background()

	alice, err := service.Create(ctx, validAccount())
	require.NoError(t, err)
	bob, err := service.Create(ctx, validAccount())
	require.NoError(t, err)

	// 1. Both sides must exist
	err = service.AddFriend(ctx, alice.ID, 999)
	assert.True(t, apperr.IsNotFound(err))
	err = service.AddFriend(ctx, 999, bob.ID)
	assert.True(t, apperr.IsNotFound(err))

	// 2. The edge is one-directional
	require.NoError(t, service.AddFriend(ctx, alice.ID, bob.ID))

	aliceFriends, err := service.Friends(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, bob.ID, aliceFriends[0].ID)

	bobFriends, err := service.Friends(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobFriends)
}

/*
TestService_RemoveFriend verifies removal and the missing-edge behavior of
the in-memory backend.
*/
func TestService_RemoveFriend(t *testing.T) {
	service := newService()
	ctx := context.Background()

	alice, err := service.Create(ctx, validAccount())
	require.NoError(t, err)
	bob, err := service.Create(ctx, validAccount())
	require.NoError(t, err)

	require.NoError(t, service.AddFriend(ctx, alice.ID, bob.ID))
	require.NoError(t, service.RemoveFriend(ctx, alice.ID, bob.ID))

	friends, err := service.Friends(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	// Removing the edge again is a NotFound with friendship wording
	err = service.RemoveFriend(ctx, alice.ID, bob.ID)
	require.Error(t, err)
	assert.Equal(t, "friendship not found", err.Error())
}

/*
TestService_MutualFriends verifies the friend-set intersection.
*/
func TestService_MutualFriends(t *testing.T) {
	service := newService()
	ctx := context.Background()

	users := make([]*user.User, 0, 4)
	for range 4 {
		created, err := service.Create(ctx, validAccount())
		require.NoError(t, err)
		users = append(users, created)
	}
	alice, bob, carol, dave := users[0], users[1], users[2], users[3]

	// alice and bob both added carol; only alice added dave
	require.NoError(t, service.AddFriend(ctx, alice.ID, carol.ID))
	require.NoError(t, service.AddFriend(ctx, alice.ID, dave.ID))
	require.NoError(t, service.AddFriend(ctx, bob.ID, carol.ID))

	shared, err := service.MutualFriends(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, carol.ID, shared[0].ID)

	// 1. No overlap yields an empty slice, not an error
	shared, err = service.MutualFriends(ctx, carol.ID, dave.ID)
	require.NoError(t, err)
	assert.Empty(t, shared)

	// 2. Either side missing is a NotFound
	_, err = service.MutualFriends(ctx, alice.ID, 999)
	assert.True(t, apperr.IsNotFound(err))
}
