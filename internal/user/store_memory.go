// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package user

import (
	"context"
	"sort"
	"sync"

	"github.com/kpetrov/filmotek/internal/platform/apperr"
)

// MemoryRepository implements [Repository] with plain maps. It backs the
// in-memory storage mode and the unit tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	users   map[int]*User
	friends map[int]map[int]struct{}
	nextID  int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:   make(map[int]*User),
		friends: make(map[int]map[int]struct{}),
		nextID:  1,
	}
}

func (repository *MemoryRepository) FindAll(_ context.Context) ([]*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	users := make([]*User, 0, len(repository.users))
	for _, account := range repository.users {
		users = append(users, repository.clone(account))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id int) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	account, ok := repository.users[id]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	return repository.clone(account), nil
}

func (repository *MemoryRepository) Create(_ context.Context, account *User) (*User, error) {
	if account.ID != 0 {
		return nil, apperr.AlreadyExists("user already exists")
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored := *account
	stored.ID = repository.nextID
	repository.nextID++
	repository.users[stored.ID] = &stored

	return repository.clone(&stored), nil
}

func (repository *MemoryRepository) Update(_ context.Context, account *User) (*User, error) {
	if account.ID == 0 {
		return nil, apperr.NotFound("user")
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.users[account.ID]; !ok {
		return nil, apperr.NotFound("user")
	}

	stored := *account
	repository.users[stored.ID] = &stored

	return repository.clone(&stored), nil
}

func (repository *MemoryRepository) AddFriend(_ context.Context, userID, friendID int) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	edges, ok := repository.friends[userID]
	if !ok {
		edges = make(map[int]struct{})
		repository.friends[userID] = edges
	}
	edges[friendID] = struct{}{}

	return nil
}

func (repository *MemoryRepository) RemoveFriend(_ context.Context, userID, friendID int) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	edges, ok := repository.friends[userID]
	if !ok {
		return apperr.NotFoundMsg("friendship not found")
	}
	if _, ok := edges[friendID]; !ok {
		return apperr.NotFoundMsg("friendship not found")
	}
	delete(edges, friendID)

	return nil
}

// clone copies an entity and attaches its friend edges so callers never see
// internal state.
func (repository *MemoryRepository) clone(account *User) *User {
	copied := *account
	copied.Friends = make([]int, 0, len(repository.friends[account.ID]))
	for friendID := range repository.friends[account.ID] {
		copied.Friends = append(copied.Friends, friendID)
	}
	sort.Ints(copied.Friends)

	return &copied
}
