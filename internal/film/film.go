// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

/*
Package film handles the film catalog and the likes relation built on it.

It provides create/update/lookup of catalog entries, maintains the
film-to-genre association and the per-film like edges, and serves the
popularity ranking query backed by an optional Redis cache.
*/
package film

import (
	"github.com/kpetrov/filmotek/internal/reference"
	"github.com/kpetrov/filmotek/pkg/date"
)

// # Field Identifiers

const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldReleaseDate = "releaseDate"
	FieldDuration    = "duration"
	FieldMPA         = "mpa"
	FieldCount       = "count"
)

// MaxDescriptionLen caps the description at the catalog-wide limit.
const MaxDescriptionLen = 200

// EarliestRelease marks the floor for release dates. Nothing was filmed
// before 1895-12-28.
var EarliestRelease = date.New(1895, 12, 28)

// Film represents one catalog entry together with its attached reference
// data and like edges.
type Film struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	ReleaseDate date.Date `json:"releaseDate"`

	// Duration is the running time in minutes.
	Duration int `json:"duration"`

	// MPA is the single required age-classification reference.
	MPA reference.MPA `json:"mpa"`

	// Genres is unique by genre id and ordered ascending when materialized.
	Genres []reference.Genre `json:"genres"`

	// Likes holds the ids of users who liked this film, deduplicated.
	Likes []int `json:"likes"`
}

// LikeCount returns the cardinality of the like set.
func (f *Film) LikeCount() int {
	return len(f.Likes)
}
