package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/najamfazal/leadtrack-solo/internal/infra/http/middleware"
	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

type AnalysisHandler struct {
	AnalyzeLeadUC *usecase.AnalyzeLeadUseCase
}

func NewAnalysisHandler(uc *usecase.AnalyzeLeadUseCase) *AnalysisHandler {
	return &AnalysisHandler{AnalyzeLeadUC: uc}
}

func (h *AnalysisHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input usecase.AnalyzeLeadInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	output, err := h.AnalyzeLeadUC.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordAnalysisRequest("error")
		writeError(w, err)
		return
	}

	middleware.RecordAnalysisRequest(output.Potential)
	writeJSON(w, http.StatusOK, output)
}
