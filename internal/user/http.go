// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/kpetrov/filmotek/internal/platform/request"
	"github.com/kpetrov/filmotek/internal/platform/respond"
)

// Handler exposes the user endpoints over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the /users route group.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Put("/", handler.update)
	router.Get("/{id}", handler.get)

	router.Route("/{id}/friends", func(r chi.Router) {
		r.Get("/", handler.friends)
		r.Get("/common/{otherId}", handler.mutualFriends)
		r.Put("/{friendId}", handler.addFriend)
		r.Delete("/{friendId}", handler.removeFriend)
	})

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, users)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.Get(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var account User
	if err := requestutil.DecodeJSON(request, &account); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), &account)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var account User
	if err := requestutil.DecodeJSON(request, &account); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), &account)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) friends(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	friends, err := handler.service.Friends(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, friends)
}

func (handler *Handler) mutualFriends(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	otherID, err := requestutil.IntParam(request, "otherId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	shared, err := handler.service.MutualFriends(request.Context(), userID, otherID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, shared)
}

func (handler *Handler) addFriend(writer http.ResponseWriter, request *http.Request) {
	userID, friendID, err := friendParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddFriend(request.Context(), userID, friendID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) removeFriend(writer http.ResponseWriter, request *http.Request) {
	userID, friendID, err := friendParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveFriend(request.Context(), userID, friendID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// friendParams extracts both path ids of a friend edge mutation.
func friendParams(request *http.Request) (int, int, error) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		return 0, 0, err
	}
	friendID, err := requestutil.IntParam(request, "friendId")
	if err != nil {
		return 0, 0, err
	}
	return userID, friendID, nil
}
