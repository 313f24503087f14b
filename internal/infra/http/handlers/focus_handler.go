package handlers

import (
	"net/http"

	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

type FocusHandler struct {
	FocusQueueUC *usecase.FocusQueueUseCase
}

func NewFocusHandler(uc *usecase.FocusQueueUseCase) *FocusHandler {
	return &FocusHandler{FocusQueueUC: uc}
}

func (h *FocusHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := usecase.FocusQueueInput{
		Kind:    q.Get("kind"),
		Routine: q.Get("routine"),
		Limit:   intParam(q.Get("limit"), 0),
		Offset:  intParam(q.Get("offset"), 0),
	}

	output, err := h.FocusQueueUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
