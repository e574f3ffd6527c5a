// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package user

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kpetrov/filmotek/internal/platform/apperr"
	"github.com/kpetrov/filmotek/internal/platform/database/schema"
	"github.com/kpetrov/filmotek/internal/platform/dberr"
	"github.com/kpetrov/filmotek/pkg/date"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindAll(ctx context.Context) ([]*User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.User.ID, schema.User.Email, schema.User.Login, schema.User.Name, schema.User.Birthday,
		schema.User.Table, schema.User.ID)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "user")
	}
	defer rows.Close()

	users := make([]*User, 0)
	byID := make(map[int]*User)

	for rows.Next() {
		account, err := scanUser(rows.Scan)
		if err != nil {
			return nil, dberr.Wrap(err, "user")
		}
		users = append(users, account)
		byID[account.ID] = account
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "user")
	}
	rows.Close()

	// Attach every friend edge in one pass.
	edgeQuery := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.Friend.UserID, schema.Friend.FriendID, schema.Friend.Table,
		schema.Friend.UserID, schema.Friend.FriendID)

	edges, err := repository.db.Query(ctx, edgeQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "user")
	}
	defer edges.Close()

	for edges.Next() {
		var userID, friendID int
		if err := edges.Scan(&userID, &friendID); err != nil {
			return nil, dberr.Wrap(err, "user")
		}
		if account, ok := byID[userID]; ok {
			account.Friends = append(account.Friends, friendID)
		}
	}

	return users, edges.Err()
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id int) (*User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.User.ID, schema.User.Email, schema.User.Login, schema.User.Name, schema.User.Birthday,
		schema.User.Table, schema.User.ID)

	row := repository.db.QueryRow(ctx, query, id)
	account, err := scanUser(row.Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "user")
	}

	friends, err := repository.friendIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	account.Friends = friends

	return account, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, account *User) (*User, error) {
	if account.ID != 0 {
		return nil, apperr.AlreadyExists("user already exists")
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s`,
		schema.User.Table,
		schema.User.Email, schema.User.Login, schema.User.Name, schema.User.Birthday,
		schema.User.ID)

	err := repository.db.QueryRow(ctx, query,
		account.Email, account.Login, account.Name, account.Birthday.Time,
	).Scan(&account.ID)
	if err != nil {
		return nil, dberr.Wrap(err, "user")
	}

	account.Friends = []int{}
	return account, nil
}

func (repository *PostgresRepository) Update(ctx context.Context, account *User) (*User, error) {
	if account.ID == 0 {
		return nil, apperr.NotFound("user")
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4 WHERE %s = $5`,
		schema.User.Table,
		schema.User.Email, schema.User.Login, schema.User.Name, schema.User.Birthday,
		schema.User.ID)

	tag, err := repository.db.Exec(ctx, query,
		account.Email, account.Login, account.Name, account.Birthday.Time, account.ID)
	if err != nil {
		return nil, dberr.Wrap(err, "user")
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("user")
	}

	return repository.FindByID(ctx, account.ID)
}

func (repository *PostgresRepository) AddFriend(ctx context.Context, userID, friendID int) error {
	// Re-adding an existing edge is not an error; the primary key absorbs it.
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		schema.Friend.Table, schema.Friend.UserID, schema.Friend.FriendID)

	if _, err := repository.db.Exec(ctx, query, userID, friendID); err != nil {
		return apperr.Unexpected("error while updating the friend list", err)
	}
	return nil
}

func (repository *PostgresRepository) RemoveFriend(ctx context.Context, userID, friendID int) error {
	// Removal is idempotent: deleting an absent edge affects zero rows and
	// that is fine.
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Friend.Table, schema.Friend.UserID, schema.Friend.FriendID)

	if _, err := repository.db.Exec(ctx, query, userID, friendID); err != nil {
		return dberr.Wrap(err, "user")
	}
	return nil
}

func (repository *PostgresRepository) friendIDs(ctx context.Context, userID int) ([]int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.Friend.FriendID, schema.Friend.Table, schema.Friend.UserID, schema.Friend.FriendID)

	rows, err := repository.db.Query(ctx, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "user")
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "user")
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// scanUser maps one users row into the domain entity.
func scanUser(scan func(...any) error) (*User, error) {
	account := &User{Friends: []int{}}
	var birthday time.Time

	if err := scan(&account.ID, &account.Email, &account.Login, &account.Name, &birthday); err != nil {
		return nil, err
	}

	account.Birthday = date.FromTime(birthday)
	return account, nil
}
