// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

/*
Package reference manages the read-only lookup tables of the film catalog.

It handles retrieval of reference entities shared across many films:

  - Genre: a tag attachable to many films (many-to-many).
  - MPA: the age-classification label, exactly one per film.

Reference rows are immutable at runtime; seed data is provisioned by the
database migrations (or by the in-memory seed lists for the map-backed store).
*/
package reference

// Genre represents a categorization tag applied to films.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MPA represents an age-classification rating (e.g. G, PG-13).
type MPA struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DefaultGenres returns the seed genre list used by the in-memory backend.
// The relational backend receives the same rows from the seed migration.
func DefaultGenres() []Genre {
	return []Genre{
		{ID: 1, Name: "Comedy"},
		{ID: 2, Name: "Drama"},
		{ID: 3, Name: "Cartoon"},
		{ID: 4, Name: "Thriller"},
		{ID: 5, Name: "Documentary"},
		{ID: 6, Name: "Action"},
	}
}

// DefaultMPA returns the seed MPA rating list used by the in-memory backend.
func DefaultMPA() []MPA {
	return []MPA{
		{ID: 1, Name: "G"},
		{ID: 2, Name: "PG"},
		{ID: 3, Name: "PG-13"},
		{ID: 4, Name: "R"},
		{ID: 5, Name: "NC-17"},
	}
}
