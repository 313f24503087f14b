package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

type TaskHandler struct {
	CompleteTaskUC *usecase.CompleteTaskUseCase
	TaskRepo       usecase.TaskRepositoryInterface
	LeadRepo       usecase.LeadRepositoryInterface
}

func NewTaskHandler(
	completeUC *usecase.CompleteTaskUseCase,
	taskRepo usecase.TaskRepositoryInterface,
	leadRepo usecase.LeadRepositoryInterface,
) *TaskHandler {
	return &TaskHandler{
		CompleteTaskUC: completeUC,
		TaskRepo:       taskRepo,
		LeadRepo:       leadRepo,
	}
}

type CreateTaskRequest struct {
	LeadID      string     `json:"lead_id"`
	Description string     `json:"description"`
	Nature      string     `json:"nature"`
	DueDate     *time.Time `json:"due_date"`
}

func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	leadName := ""
	if req.LeadID != "" {
		lead, err := h.LeadRepo.FindByID(r.Context(), req.LeadID)
		if err != nil {
			writeError(w, err)
			return
		}
		leadName = lead.Name
	}

	if req.Nature == "" {
		req.Nature = entity.NatureProcedural
	}

	task, err := entity.NewTask(req.LeadID, leadName, req.Description, req.Nature, req.DueDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "VALIDATION_ERROR"})
		return
	}

	if err := h.TaskRepo.Create(r.Context(), task); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := usecase.TaskFilter{
		LeadID: q.Get("lead_id"),
		Limit:  intParam(q.Get("limit"), 20),
		Offset: intParam(q.Get("offset"), 0),
	}
	if completed := q.Get("completed"); completed != "" {
		value := completed == "true"
		filter.Completed = &value
	}
	if q.Get("overdue") == "true" {
		now := time.Now()
		filter.OverdueAt = &now
	}

	tasks, err := h.TaskRepo.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if tasks == nil {
		tasks = []*entity.Task{}
	}

	writeJSON(w, http.StatusOK, tasks)
}

type UpdateTaskRequest struct {
	Completed bool `json:"completed"`
}

func (h *TaskHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskId")

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.CompleteTaskUC.Execute(r.Context(), taskID, req.Completed)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}
