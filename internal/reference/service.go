// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package reference

import (
	"context"
	"log/slog"
)

// Service exposes the reference lookups to the HTTP layer.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListGenres(ctx context.Context) ([]Genre, error) {
	return service.repo.ListGenres(ctx)
}

func (service *Service) GetGenre(ctx context.Context, id int) (*Genre, error) {
	return service.repo.GetGenreByID(ctx, id)
}

func (service *Service) ListMPA(ctx context.Context) ([]MPA, error) {
	return service.repo.ListMPA(ctx)
}

func (service *Service) GetMPA(ctx context.Context, id int) (*MPA, error) {
	return service.repo.GetMPAByID(ctx, id)
}
