package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/softhouse/dreams-gateway/internal/api/shared"
	"github.com/softhouse/dreams-gateway/internal/service"
)

// ResourceHandler serves the routes of one collection.
type ResourceHandler struct {
	svc          service.ResourceService
	maxBodyBytes int64
}

// NewResourceHandler creates a handler for svc. Request bodies larger than
// maxBodyBytes are rejected; zero disables the limit.
func NewResourceHandler(svc service.ResourceService, maxBodyBytes int64) *ResourceHandler {
	return &ResourceHandler{svc: svc, maxBodyBytes: maxBodyBytes}
}

// Create handles POST /{collection}.
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := shared.DecodeJSONObject(r, h.maxBodyBytes)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), body)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithRawJSON(w, r, http.StatusOK, created)
}

// List handles GET /{collection}. The raw query string is forwarded as is.
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), r.URL.RawQuery)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithRawJSON(w, r, http.StatusOK, items)
}

// Get handles GET /{collection}/{id}.
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithRawJSON(w, r, http.StatusOK, item)
}

// Update handles PUT /{collection}/{id}.
func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := shared.DecodeJSONObject(r, h.maxBodyBytes)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), body); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK, shared.MsgUpdated)
}

// Delete handles DELETE /{collection}/{id}.
func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK, shared.MsgDeleted)
}

// ListBySide returns a handler for GET /{collection}/{side}/{id}.
func (h *ResourceHandler) ListBySide(side string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.svc.ListBySide(r.Context(), side, chi.URLParam(r, "id"))
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		shared.RespondWithRawJSON(w, r, http.StatusOK, items)
	}
}

// DeleteBySide returns a handler for DELETE /{collection}/{side}/{id}.
func (h *ResourceHandler) DeleteBySide(side string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := h.svc.DeleteBySide(r.Context(), side, chi.URLParam(r, "id"))
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
			Message: shared.MsgDeleted,
			Deleted: &deleted,
		})
	}
}
