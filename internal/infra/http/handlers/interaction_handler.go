package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
	"github.com/najamfazal/leadtrack-solo/internal/infra/http/middleware"
	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

type InteractionHandler struct {
	LogInteractionUC *usecase.LogInteractionUseCase
	InteractionRepo  usecase.InteractionRepositoryInterface
}

func NewInteractionHandler(
	logUC *usecase.LogInteractionUseCase,
	repo usecase.InteractionRepositoryInterface,
) *InteractionHandler {
	return &InteractionHandler{
		LogInteractionUC: logUC,
		InteractionRepo:  repo,
	}
}

func (h *InteractionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.LogInteractionInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	interaction, err := h.LogInteractionUC.Execute(r.Context(), input)
	if err != nil {
		// A publish failure still recorded the interaction; surface it
		// with 202 so the client knows processing is deferred.
		if interaction != nil && usecase.IsTechnicalError(err) {
			writeJSON(w, http.StatusAccepted, interaction)
			return
		}
		writeError(w, err)
		return
	}

	middleware.RecordInteractionLogged(interactionShape(input))
	writeJSON(w, http.StatusCreated, interaction)
}

func (h *InteractionHandler) HandleListByLead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadId")

	interactions, err := h.InteractionRepo.ListByLead(r.Context(), leadID)
	if err != nil {
		writeError(w, err)
		return
	}
	if interactions == nil {
		interactions = []*entity.Interaction{}
	}

	writeJSON(w, http.StatusOK, interactions)
}

func interactionShape(input usecase.LogInteractionInput) string {
	switch {
	case input.Feedback != nil:
		return "feedback"
	case input.Outcome != "":
		return "outcome"
	default:
		return "quick_log"
	}
}
