package todos

import (
	"net/http"
	"time"

	todosdomain "todo-lists-api/internal/domain/todos"
)

type createTodoListRequest struct {
	Name string `json:"name"`
}

type updateTodoListRequest struct {
	Name *string `json:"name"`
}

type todoListResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	CompletedCount int64      `json:"completed_count"`
	TotalCount     int64      `json:"total_count"`
	DeletedAt      *time.Time `json:"deleted_at"`
	Progress       float64    `json:"progress"`
}

func toTodoListResponse(view todosdomain.ListView) todoListResponse {
	return todoListResponse{
		ID:             view.ID,
		Name:           view.Name,
		CompletedCount: view.CompletedCount,
		TotalCount:     view.TotalCount,
		DeletedAt:      view.DeletedAtTime(),
		Progress:       view.Progress,
	}
}

func (h *Handlers) CreateTodoList(w http.ResponseWriter, r *http.Request) {
	var req createTodoListRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	list, err := h.Todos.CreateTodoList(r.Context(), todosdomain.CreateTodoListInput{Name: req.Name})
	if err != nil {
		h.writeServiceError(w, r, "todos.create_list", err)
		return
	}

	h.requestLog(r).Debug("todos.create_list: created", "list_id", list.ID)
	writeJSON(w, http.StatusCreated, toTodoListResponse(*list))
}

func (h *Handlers) ListTodoLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.Todos.ListTodoLists(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "todos.list_lists", err)
		return
	}

	response := make([]todoListResponse, 0, len(lists))
	for _, list := range lists {
		response = append(response, toTodoListResponse(list))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetTodoList(w http.ResponseWriter, r *http.Request) {
	listID, err := parseIDParam(r, "list_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid list_id")
		return
	}

	list, err := h.Todos.GetTodoList(r.Context(), listID)
	if err != nil {
		h.writeServiceError(w, r, "todos.get_list", err, "list_id", listID)
		return
	}

	writeJSON(w, http.StatusOK, toTodoListResponse(*list))
}

func (h *Handlers) UpdateTodoList(w http.ResponseWriter, r *http.Request) {
	listID, err := parseIDParam(r, "list_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid list_id")
		return
	}

	var req updateTodoListRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	list, err := h.Todos.UpdateTodoList(r.Context(), todosdomain.UpdateTodoListInput{
		ID:   listID,
		Name: req.Name,
	})
	if err != nil {
		h.writeServiceError(w, r, "todos.update_list", err, "list_id", listID)
		return
	}

	writeJSON(w, http.StatusOK, toTodoListResponse(*list))
}

func (h *Handlers) DeleteTodoList(w http.ResponseWriter, r *http.Request) {
	listID, err := parseIDParam(r, "list_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid list_id")
		return
	}

	if err := h.Todos.DeleteTodoList(r.Context(), listID); err != nil {
		h.writeServiceError(w, r, "todos.delete_list", err, "list_id", listID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
