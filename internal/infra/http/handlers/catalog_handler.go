package handlers

import (
	"net/http"

	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

type CatalogHandler struct {
	SettingsRepo usecase.SettingsRepositoryInterface
}

func NewCatalogHandler(repo usecase.SettingsRepositoryInterface) *CatalogHandler {
	return &CatalogHandler{SettingsRepo: repo}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.SettingsRepo.GetSalesCatalog(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, catalog)
}
