// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package reference

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kpetrov/filmotek/internal/platform/database/schema"
	"github.com/kpetrov/filmotek/internal/platform/dberr"
)

// PostgresRepository implements [Repository] against the genres and ratings tables.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListGenres(ctx context.Context) ([]Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Genre.ID, schema.Genre.Name, schema.Genre.Table, schema.Genre.ID)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "genre")
	}
	defer rows.Close()

	genres := make([]Genre, 0)
	for rows.Next() {
		var genre Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, dberr.Wrap(err, "genre")
		}
		genres = append(genres, genre)
	}

	return genres, rows.Err()
}

func (repository *PostgresRepository) GetGenreByID(ctx context.Context, id int) (*Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.Genre.ID, schema.Genre.Name, schema.Genre.Table, schema.Genre.ID)

	genre := &Genre{}
	if err := repository.db.QueryRow(ctx, query, id).Scan(&genre.ID, &genre.Name); err != nil {
		return nil, dberr.Wrap(err, "genre")
	}

	return genre, nil
}

func (repository *PostgresRepository) ListMPA(ctx context.Context) ([]MPA, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Rating.ID, schema.Rating.Name, schema.Rating.Table, schema.Rating.ID)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "mpa rating")
	}
	defer rows.Close()

	ratings := make([]MPA, 0)
	for rows.Next() {
		var rating MPA
		if err := rows.Scan(&rating.ID, &rating.Name); err != nil {
			return nil, dberr.Wrap(err, "mpa rating")
		}
		ratings = append(ratings, rating)
	}

	return ratings, rows.Err()
}

func (repository *PostgresRepository) GetMPAByID(ctx context.Context, id int) (*MPA, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.Rating.ID, schema.Rating.Name, schema.Rating.Table, schema.Rating.ID)

	rating := &MPA{}
	if err := repository.db.QueryRow(ctx, query, id).Scan(&rating.ID, &rating.Name); err != nil {
		return nil, dberr.Wrap(err, "mpa rating")
	}

	return rating, nil
}
