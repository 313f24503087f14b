package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

type ImportHandler struct {
	ImportContactsUC *usecase.ImportContactsUseCase
}

func NewImportHandler(uc *usecase.ImportContactsUseCase) *ImportHandler {
	return &ImportHandler{ImportContactsUC: uc}
}

func (h *ImportHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	var input usecase.ImportContactsInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	output, err := h.ImportContactsUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
