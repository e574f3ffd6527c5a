// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

/*
Package user handles the account registry and the friendship graph.

It provides create/update/lookup of user profiles and maintains the directed
friend edges between them, including the mutual-friend intersection query.

# Friendship Model

A friend edge is directed: "A added B" stores exactly one (A, B) edge, and B
does not see A in their friend list until a reciprocal call adds the (B, A)
edge. The read path only follows outgoing edges of the queried user.
*/
package user

import (
	"github.com/kpetrov/filmotek/pkg/date"
)

// # Field Identifiers

const (
	FieldID       = "id"
	FieldEmail    = "email"
	FieldLogin    = "login"
	FieldName     = "name"
	FieldBirthday = "birthday"
)

// User represents a registered account and its outgoing friend edges.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Login string `json:"login"`

	// Name is the display name. When blank at write time it is replaced by
	// the login once, before persistence.
	Name string `json:"name"`

	Birthday date.Date `json:"birthday"`

	// Friends holds the ids of users this user added, ascending, no duplicates.
	Friends []int `json:"friends"`
}
