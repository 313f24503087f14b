package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
	"github.com/najamfazal/leadtrack-solo/internal/infra/http/middleware"
	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

type LeadHandler struct {
	CreateLeadUC *usecase.CreateLeadUseCase
	DeleteLeadUC *usecase.DeleteLeadUseCase
	LeadRepo     usecase.LeadRepositoryInterface
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
	leadRepo usecase.LeadRepositoryInterface,
) *LeadHandler {
	return &LeadHandler{
		CreateLeadUC: createUC,
		DeleteLeadUC: deleteUC,
		LeadRepo:     leadRepo,
	}
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	lead, err := h.CreateLeadUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := usecase.LeadFilter{
		NamePrefix: q.Get("q"),
		Limit:      intParam(q.Get("limit"), 20),
		Offset:     intParam(q.Get("offset"), 0),
	}
	if statuses := q.Get("status"); statuses != "" {
		filter.Statuses = strings.Split(statuses, ",")
	}
	if engaged := q.Get("engaged"); engaged != "" {
		value := engaged == "true"
		filter.HasEngaged = &value
	}

	leads, err := h.LeadRepo.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if leads == nil {
		leads = []*entity.Lead{}
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadId")

	lead, err := h.LeadRepo.FindByID(r.Context(), leadID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

// patchableLeadFields mirrors the repository whitelist so bad keys are
// rejected with a 400 instead of surfacing as a server error.
var patchableLeadFields = map[string]bool{
	"name":           true,
	"email":          true,
	"notes":          true,
	"relationship":   true,
	"status":         true,
	"on_follow_list": true,
	"insights":       true,
	"traits":         true,
	"phones":         true,
}

func (h *LeadHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadId")

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	for key := range fields {
		if !patchableLeadFields[key] {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error: "field " + key + " is not updatable",
				Code:  "INVALID_FIELD",
			})
			return
		}
	}

	if err := h.LeadRepo.UpdateFields(r.Context(), leadID, fields); err != nil {
		writeError(w, err)
		return
	}

	lead, err := h.LeadRepo.FindByID(r.Context(), leadID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadId")

	var snapshot entity.CommitmentSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.LeadRepo.UpdateSnapshot(r.Context(), leadID, snapshot); err != nil {
		writeError(w, err)
		return
	}

	lead, err := h.LeadRepo.FindByID(r.Context(), leadID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadId")

	if err := h.DeleteLeadUC.Execute(r.Context(), leadID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func intParam(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
