package handlers

import (
	"net/http"
	"time"

	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

type DigestHandler struct {
	SendDigestUC *usecase.SendDigestUseCase
}

func NewDigestHandler(uc *usecase.SendDigestUseCase) *DigestHandler {
	return &DigestHandler{SendDigestUC: uc}
}

type DigestResponse struct {
	Sent  bool `json:"sent"`
	Tasks int  `json:"tasks"`
}

func (h *DigestHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	count, err := h.SendDigestUC.Execute(r.Context(), time.Now())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DigestResponse{Sent: true, Tasks: count})
}
