package rpmdata

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Put("/", h.Upload)
	r.Get("/", h.Download)

	return r
}
