// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package schema

// RatingTable represents the 'ratings' table (MPA age classifications)
type RatingTable struct {
	Table string
	ID    string
	Name  string
}

// Rating is the schema definition for ratings
var Rating = RatingTable{
	Table: "ratings",
	ID:    "rating_id",
	Name:  "name",
}
