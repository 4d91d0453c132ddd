// Favorite HTTP handlers.
//
// This file exposes REST endpoints for per-client favorites:
//   - POST /jokes/{id}/favorite  (mark as favorite, idempotent)
//   - GET  /favorites            (list current client's favorites)
//
// The client identity is an opaque string derived from the request: the
// X-Client-ID header when present (useful behind proxies and in tests),
// otherwise the client IP address. The engine itself attaches no meaning
// to the value beyond using it as a key.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jokedev/go-jokes-backend/internal/domain"
)

// FavoriteResponse reports the outcome of a favorite request.
type FavoriteResponse struct {
	// Created is true when a new favorite row was inserted, false when the
	// pair already existed (replay).
	Created bool   `json:"created"`
	Message string `json:"message"`
}

// ListFavoritesResponse wraps a client's favorite jokes.
type ListFavoritesResponse struct {
	Count     int           `json:"count"`
	Favorites []domain.Joke `json:"favorites"`
}

// clientID extracts the caller's identity for favorite tracking. It never
// touches c.Request if it's nil.
func clientID(c *gin.Context) string {
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-Client-ID")); h != "" {
			return h
		}
	}
	return c.ClientIP()
}

// FavoriteJoke godoc
// @ID          favoriteJoke
// @Summary     Mark a joke as favorite
// @Description Idempotent: the first call inserts, later calls report created=false.
// @Tags        Favorites
// @Produce     json
//
// @Param       X-Client-ID  header  string  false "Client identity override"
// @Param       id           path    int     true  "Joke ID"
//
// @Success     201  {object} handlers.FavoriteResponse "Newly favorited"
// @Success     200  {object} handlers.FavoriteResponse "Already a favorite"
// @Failure     404  {object} handlers.ErrorResponse    "Joke not found"
// @Router      /jokes/{id}/favorite [post]
func (h *Handlers) FavoriteJoke(c *gin.Context) {
	id, valid := jokeID(c)
	if !valid {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "joke id must be a positive integer")
		return
	}
	created, err := h.favorites.Favorite(c.Request.Context(), id, clientID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	if created {
		ok(c, http.StatusCreated, FavoriteResponse{Created: true, Message: "joke added to favorites"})
		return
	}
	ok(c, http.StatusOK, FavoriteResponse{Created: false, Message: "joke already in favorites"})
}

// ListFavorites godoc
// @ID          listFavorites
// @Summary     List the current client's favorites
// @Description Most recently favorited first, joined against current joke state.
// @Tags        Favorites
// @Produce     json
//
// @Param       X-Client-ID  header  string  false "Client identity override"
//
// @Success     200  {object} handlers.ListFavoritesResponse
// @Router      /favorites [get]
func (h *Handlers) ListFavorites(c *gin.Context) {
	items, err := h.favorites.List(c.Request.Context(), clientID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ListFavoritesResponse{Count: len(items), Favorites: items})
}
