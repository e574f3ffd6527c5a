// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package schema

// FriendTable represents the 'friends' directed edge table
type FriendTable struct {
	Table    string
	UserID   string
	FriendID string
}

// Friend is the schema definition for friends
var Friend = FriendTable{
	Table:    "friends",
	UserID:   "user_id",
	FriendID: "friend_id",
}
