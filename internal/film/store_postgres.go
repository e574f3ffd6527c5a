// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package film

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kpetrov/filmotek/internal/platform/apperr"
	"github.com/kpetrov/filmotek/internal/platform/database/schema"
	"github.com/kpetrov/filmotek/internal/platform/dberr"
	"github.com/kpetrov/filmotek/internal/reference"
	"github.com/kpetrov/filmotek/pkg/date"
)

// PostgresRepository implements [Repository] using pgx. Multi-statement
// writes (the film row plus its genre association) run in one transaction.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindAll(ctx context.Context) ([]*Film, error) {
	query := fmt.Sprintf(`
		SELECT f.%s, f.%s, f.%s, f.%s, f.%s, r.%s, r.%s
		FROM %s f
		JOIN %s r ON r.%s = f.%s
		ORDER BY f.%s ASC`,
		schema.Film.ID, schema.Film.Name, schema.Film.Description,
		schema.Film.ReleaseDate, schema.Film.Duration,
		schema.Rating.ID, schema.Rating.Name,
		schema.Film.Table,
		schema.Rating.Table, schema.Rating.ID, schema.Film.RatingID,
		schema.Film.ID)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "film")
	}
	defer rows.Close()

	films := make([]*Film, 0)
	byID := make(map[int]*Film)

	for rows.Next() {
		entry, err := scanFilm(rows.Scan)
		if err != nil {
			return nil, dberr.Wrap(err, "film")
		}
		films = append(films, entry)
		byID[entry.ID] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "film")
	}
	rows.Close()

	if err := repository.attachGenres(ctx, byID); err != nil {
		return nil, err
	}
	if err := repository.attachLikes(ctx, byID); err != nil {
		return nil, err
	}

	return films, nil
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id int) (*Film, error) {
	query := fmt.Sprintf(`
		SELECT f.%s, f.%s, f.%s, f.%s, f.%s, r.%s, r.%s
		FROM %s f
		JOIN %s r ON r.%s = f.%s
		WHERE f.%s = $1`,
		schema.Film.ID, schema.Film.Name, schema.Film.Description,
		schema.Film.ReleaseDate, schema.Film.Duration,
		schema.Rating.ID, schema.Rating.Name,
		schema.Film.Table,
		schema.Rating.Table, schema.Rating.ID, schema.Film.RatingID,
		schema.Film.ID)

	row := repository.db.QueryRow(ctx, query, id)
	entry, err := scanFilm(row.Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "film")
	}

	single := map[int]*Film{entry.ID: entry}
	if err := repository.attachGenres(ctx, single); err != nil {
		return nil, err
	}
	if err := repository.attachLikes(ctx, single); err != nil {
		return nil, err
	}

	return entry, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, entry *Film) (*Film, error) {
	if entry.ID != 0 {
		return nil, apperr.AlreadyExists("film already exists")
	}

	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer transaction.Rollback(ctx)

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5) RETURNING %s`,
		schema.Film.Table,
		schema.Film.Name, schema.Film.Description, schema.Film.ReleaseDate,
		schema.Film.Duration, schema.Film.RatingID,
		schema.Film.ID)

	err = transaction.QueryRow(ctx, query,
		entry.Name, entry.Description, entry.ReleaseDate.Time, entry.Duration, entry.MPA.ID,
	).Scan(&entry.ID)
	if err != nil {
		return nil, dberr.Wrap(err, "film")
	}

	if err := replaceGenres(ctx, transaction, entry.ID, entry.Genres); err != nil {
		return nil, err
	}

	if err := transaction.Commit(ctx); err != nil {
		return nil, apperr.Internal(err)
	}

	return repository.FindByID(ctx, entry.ID)
}

func (repository *PostgresRepository) Update(ctx context.Context, entry *Film) (*Film, error) {
	if entry.ID == 0 {
		return nil, apperr.NotFound("film")
	}

	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer transaction.Rollback(ctx)

	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5 WHERE %s = $6`,
		schema.Film.Table,
		schema.Film.Name, schema.Film.Description, schema.Film.ReleaseDate,
		schema.Film.Duration, schema.Film.RatingID,
		schema.Film.ID)

	tag, err := transaction.Exec(ctx, query,
		entry.Name, entry.Description, entry.ReleaseDate.Time, entry.Duration, entry.MPA.ID, entry.ID)
	if err != nil {
		return nil, dberr.Wrap(err, "film")
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("film")
	}

	if err := replaceGenres(ctx, transaction, entry.ID, entry.Genres); err != nil {
		return nil, err
	}

	if err := transaction.Commit(ctx); err != nil {
		return nil, apperr.Internal(err)
	}

	return repository.FindByID(ctx, entry.ID)
}

func (repository *PostgresRepository) AddLike(ctx context.Context, filmID, userID int) error {
	// Duplicate likes are absorbed by the primary key; a user either has
	// or has not liked a film.
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		schema.Like.Table, schema.Like.FilmID, schema.Like.UserID)

	if _, err := repository.db.Exec(ctx, query, filmID, userID); err != nil {
		return apperr.Unexpected("error while updating the like set", err)
	}
	return nil
}

func (repository *PostgresRepository) RemoveLike(ctx context.Context, filmID, userID int) error {
	// Removing a never-added like affects zero rows, which is fine.
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Like.Table, schema.Like.FilmID, schema.Like.UserID)

	if _, err := repository.db.Exec(ctx, query, filmID, userID); err != nil {
		return dberr.Wrap(err, "film")
	}
	return nil
}

// replaceGenres synchronizes the film_genre junction inside the caller's
// transaction. Delete-all then batch-insert, resolved in one round trip.
func replaceGenres(ctx context.Context, transaction pgx.Tx, filmID int, genres []reference.Genre) error {
	clearQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.FilmGenre.Table, schema.FilmGenre.FilmID)
	if _, err := transaction.Exec(ctx, clearQuery, filmID); err != nil {
		return apperr.Unexpected("error while clearing the genre association", err)
	}

	if len(genres) == 0 {
		return nil
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		schema.FilmGenre.Table, schema.FilmGenre.FilmID, schema.FilmGenre.GenreID)

	batch := &pgx.Batch{}
	for _, genre := range genres {
		batch.Queue(insert, filmID, genre.ID)
	}

	if err := transaction.SendBatch(ctx, batch).Close(); err != nil {
		return apperr.Unexpected("error while writing the genre association", err)
	}
	return nil
}

// attachGenres loads the genre association for every film in the map,
// ordered ascending by genre id.
func (repository *PostgresRepository) attachGenres(ctx context.Context, byID map[int]*Film) error {
	if len(byID) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		SELECT fg.%s, g.%s, g.%s
		FROM %s fg
		JOIN %s g ON g.%s = fg.%s
		WHERE fg.%s = ANY($1)
		ORDER BY fg.%s ASC, g.%s ASC`,
		schema.FilmGenre.FilmID, schema.Genre.ID, schema.Genre.Name,
		schema.FilmGenre.Table,
		schema.Genre.Table, schema.Genre.ID, schema.FilmGenre.GenreID,
		schema.FilmGenre.FilmID,
		schema.FilmGenre.FilmID, schema.Genre.ID)

	rows, err := repository.db.Query(ctx, query, filmIDs(byID))
	if err != nil {
		return dberr.Wrap(err, "film")
	}
	defer rows.Close()

	for rows.Next() {
		var filmID int
		var genre reference.Genre
		if err := rows.Scan(&filmID, &genre.ID, &genre.Name); err != nil {
			return dberr.Wrap(err, "film")
		}
		if entry, ok := byID[filmID]; ok {
			entry.Genres = append(entry.Genres, genre)
		}
	}
	return rows.Err()
}

// attachLikes loads the like edges for every film in the map. The primary
// key on (film_id, user_id) guarantees deduplication.
func (repository *PostgresRepository) attachLikes(ctx context.Context, byID map[int]*Film) error {
	if len(byID) == 0 {
		return nil
	}

	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s ASC, %s ASC`,
		schema.Like.FilmID, schema.Like.UserID, schema.Like.Table,
		schema.Like.FilmID, schema.Like.FilmID, schema.Like.UserID)

	rows, err := repository.db.Query(ctx, query, filmIDs(byID))
	if err != nil {
		return dberr.Wrap(err, "film")
	}
	defer rows.Close()

	for rows.Next() {
		var filmID, userID int
		if err := rows.Scan(&filmID, &userID); err != nil {
			return dberr.Wrap(err, "film")
		}
		if entry, ok := byID[filmID]; ok {
			entry.Likes = append(entry.Likes, userID)
		}
	}
	return rows.Err()
}

func filmIDs(byID map[int]*Film) []int {
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	return ids
}

// scanFilm maps one joined films row into the domain entity.
func scanFilm(scan func(...any) error) (*Film, error) {
	entry := &Film{Genres: []reference.Genre{}, Likes: []int{}}
	var released time.Time

	err := scan(&entry.ID, &entry.Name, &entry.Description, &released,
		&entry.Duration, &entry.MPA.ID, &entry.MPA.Name)
	if err != nil {
		return nil, err
	}

	entry.ReleaseDate = date.FromTime(released)
	return entry, nil
}
