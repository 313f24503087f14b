package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

type SettingsHandler struct {
	UpdateSettingsUC *usecase.UpdateSettingsUseCase
	SettingsRepo     usecase.SettingsRepositoryInterface
}

func NewSettingsHandler(
	updateUC *usecase.UpdateSettingsUseCase,
	repo usecase.SettingsRepositoryInterface,
) *SettingsHandler {
	return &SettingsHandler{
		UpdateSettingsUC: updateUC,
		SettingsRepo:     repo,
	}
}

func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	settings, err := h.SettingsRepo.GetAppSettings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

type OptionRequest struct {
	Value string `json:"value"`
}

type RenameOptionRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (h *SettingsHandler) HandleAddOption(w http.ResponseWriter, r *http.Request) {
	listName := chi.URLParam(r, "list")

	var req OptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := h.UpdateSettingsUC.AddOption(r.Context(), listName, req.Value)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) HandleRenameOption(w http.ResponseWriter, r *http.Request) {
	listName := chi.URLParam(r, "list")

	var req RenameOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := h.UpdateSettingsUC.RenameOption(r.Context(), listName, req.From, req.To)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

type PromptRequest struct {
	Prompt string `json:"prompt"`
}

func (h *SettingsHandler) HandleSetPrompt(w http.ResponseWriter, r *http.Request) {
	var req PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := h.UpdateSettingsUC.SetAnalysisPrompt(r.Context(), req.Prompt)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) HandleRemoveOption(w http.ResponseWriter, r *http.Request) {
	listName := chi.URLParam(r, "list")

	var req OptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := h.UpdateSettingsUC.RemoveOption(r.Context(), listName, req.Value)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
