// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package film

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kpetrov/filmotek/internal/platform/constants"
	requestutil "github.com/kpetrov/filmotek/internal/platform/request"
	"github.com/kpetrov/filmotek/internal/platform/respond"
)

// Handler exposes the film endpoints over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the /films route group.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Put("/", handler.update)
	router.Get("/popular", handler.popular)
	router.Get("/{id}", handler.get)

	router.Route("/{id}/like", func(r chi.Router) {
		r.Put("/{userId}", handler.addLike)
		r.Delete("/{userId}", handler.removeLike)
	})

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	films, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, films)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Get(request.Context(), filmID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entry)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var entry Film
	if err := requestutil.DecodeJSON(request, &entry); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), &entry)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var entry Film
	if err := requestutil.DecodeJSON(request, &entry); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), &entry)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) popular(writer http.ResponseWriter, request *http.Request) {
	count, err := requestutil.IntQuery(request, "count", constants.DefaultPopularCount)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	films, err := handler.service.TopLiked(request.Context(), count)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, films)
}

func (handler *Handler) addLike(writer http.ResponseWriter, request *http.Request) {
	filmID, userID, err := likeParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddLike(request.Context(), filmID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) removeLike(writer http.ResponseWriter, request *http.Request) {
	filmID, userID, err := likeParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveLike(request.Context(), filmID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// likeParams extracts both path ids of a like mutation.
func likeParams(request *http.Request) (int, int, error) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		return 0, 0, err
	}
	userID, err := requestutil.IntParam(request, "userId")
	if err != nil {
		return 0, 0, err
	}
	return filmID, userID, nil
}
