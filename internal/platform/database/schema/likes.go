// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package schema

// LikeTable represents the 'likes' edge table (user endorses film)
type LikeTable struct {
	Table  string
	FilmID string
	UserID string
}

// Like is the schema definition for likes
var Like = LikeTable{
	Table:  "likes",
	FilmID: "film_id",
	UserID: "user_id",
}
