package handlers

import (
	"net/http"

	"github.com/streamvault/streamvault/internal/service"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	writeJSON(w, http.StatusOK, h.catalog.ByCategory(r.Context(), category))
}

func (h *CatalogHandler) Trending(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Trending(r.Context()))
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	writeJSON(w, http.StatusOK, h.catalog.Search(r.Context(), query))
}
