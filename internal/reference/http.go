// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/kpetrov/filmotek/internal/platform/request"
	"github.com/kpetrov/filmotek/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the /genres and /mpa route groups.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Route("/genres", func(r chi.Router) {
		r.Get("/", handler.listGenres)
		r.Get("/{id}", handler.getGenre)
	})

	router.Route("/mpa", func(r chi.Router) {
		r.Get("/", handler.listMPA)
		r.Get("/{id}", handler.getMPA)
	})

	return router
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genres)
}

func (handler *Handler) getGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	genre, err := handler.service.GetGenre(request.Context(), genreID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genre)
}

func (handler *Handler) listMPA(writer http.ResponseWriter, request *http.Request) {
	ratings, err := handler.service.ListMPA(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ratings)
}

func (handler *Handler) getMPA(writer http.ResponseWriter, request *http.Request) {
	ratingID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rating, err := handler.service.GetMPA(request.Context(), ratingID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, rating)
}
