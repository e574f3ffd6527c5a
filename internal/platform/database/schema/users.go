// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package schema

// UserTable represents the 'users' table
type UserTable struct {
	Table    string
	ID       string
	Email    string
	Login    string
	Name     string
	Birthday string
}

// User is the schema definition for users
var User = UserTable{
	Table:    "users",
	ID:       "user_id",
	Email:    "email",
	Login:    "login",
	Name:     "name",
	Birthday: "birthday",
}

// Columns returns all standard column names
func (t UserTable) Columns() []string {
	return []string{t.ID, t.Email, t.Login, t.Name, t.Birthday}
}
