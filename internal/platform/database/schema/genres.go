// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package schema

// GenreTable represents the 'genres' table
type GenreTable struct {
	Table string
	ID    string
	Name  string
}

// Genre is the schema definition for genres
var Genre = GenreTable{
	Table: "genres",
	ID:    "genre_id",
	Name:  "name",
}
