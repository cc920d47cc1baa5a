package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/usecases"
)

func taskIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("taskID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", r.PathValue("taskID"))
	}
	return id, nil
}

func (api KaamKaajServer) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = ErrorCode_BadRequest
		errResp.Error.Message = fmt.Sprintf("invalid request body: %v", err)

		respondError(w, errResp)
		return
	}

	input := usecases.NewTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Category:    req.Category,
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		input.Priority = &priority
	}

	task, err := api.CreateTaskUseCase.Execute(r.Context(), ownerIDFromContext(r.Context()), input)
	if err != nil {
		api.Logger.Printf("Error creating task: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toTask(task))
}

func (api KaamKaajServer) handleListTasks(w http.ResponseWriter, r *http.Request) {
	opts := domain.ListTasksOptions{
		Status:   domain.TaskStatus(r.URL.Query().Get("status")),
		Category: r.URL.Query().Get("category"),
	}
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			respondError(w, toError(domain.NewValidationErr(fmt.Sprintf("invalid limit %q", rawLimit))))
			return
		}
		opts.Limit = limit
	}
	if rawDue := r.URL.Query().Get("due_before"); rawDue != "" {
		due, err := time.Parse(time.RFC3339, rawDue)
		if err != nil {
			due, err = time.Parse("2006-01-02", rawDue)
		}
		if err != nil {
			respondError(w, toError(domain.NewValidationErr(fmt.Sprintf("invalid due_before %q", rawDue))))
			return
		}
		opts.DueBefore = &due
	}

	tasks, err := api.ListTasksUseCase.Query(r.Context(), ownerIDFromContext(r.Context()), opts)
	if err != nil {
		api.Logger.Printf("Error listing tasks: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := ListTasksResp{Items: []Task{}}
	for _, t := range tasks {
		resp.Items = append(resp.Items, toTask(t))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api KaamKaajServer) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDFromPath(r)
	if err != nil {
		respondError(w, toError(domain.NewValidationErr(err.Error())))
		return
	}

	task, err := api.GetTaskUseCase.Query(r.Context(), ownerIDFromContext(r.Context()), id)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTask(task))
}

func (api KaamKaajServer) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDFromPath(r)
	if err != nil {
		respondError(w, toError(domain.NewValidationErr(err.Error())))
		return
	}

	var req UpdateTaskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = ErrorCode_BadRequest
		errResp.Error.Message = fmt.Sprintf("invalid request body: %v", err)

		respondError(w, errResp)
		return
	}

	patch := usecases.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		ClearDue:    req.ClearDueDate,
		Category:    req.Category,
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}

	task, err := api.UpdateTaskUseCase.Execute(r.Context(), ownerIDFromContext(r.Context()), id, patch)
	if err != nil {
		api.Logger.Printf("Error updating task %d: %v", id, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTask(task))
}

func (api KaamKaajServer) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDFromPath(r)
	if err != nil {
		respondError(w, toError(domain.NewValidationErr(err.Error())))
		return
	}

	task, err := api.CompleteTaskUseCase.Execute(r.Context(), ownerIDFromContext(r.Context()), id)
	if err != nil {
		api.Logger.Printf("Error completing task %d: %v", id, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTask(task))
}

func (api KaamKaajServer) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDFromPath(r)
	if err != nil {
		respondError(w, toError(domain.NewValidationErr(err.Error())))
		return
	}

	if err := api.DeleteTaskUseCase.Execute(r.Context(), ownerIDFromContext(r.Context()), id); err != nil {
		api.Logger.Printf("Error deleting task %d: %v", id, err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
