package todos

import (
	"net/http"
	"time"

	todosdomain "todo-lists-api/internal/domain/todos"
)

type createTodoItemRequest struct {
	Name   string `json:"name"`
	Text   string `json:"text"`
	IsDone bool   `json:"is_done"`
}

type updateTodoItemRequest struct {
	Name   *string `json:"name"`
	Text   *string `json:"text"`
	IsDone *bool   `json:"is_done"`
}

type todoItemResponse struct {
	ID        int64      `json:"id"`
	ListID    int64      `json:"list_id"`
	Name      string     `json:"name"`
	Text      string     `json:"text"`
	IsDone    bool       `json:"is_done"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func toTodoItemResponse(item todosdomain.TodoItem) todoItemResponse {
	return todoItemResponse{
		ID:        item.ID,
		ListID:    item.ListID,
		Name:      item.Name,
		Text:      item.Text,
		IsDone:    item.IsDone,
		DeletedAt: item.DeletedAtTime(),
	}
}

func (h *Handlers) CreateTodoItem(w http.ResponseWriter, r *http.Request) {
	listID, err := parseIDParam(r, "list_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid list_id")
		return
	}

	var req createTodoItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	item, err := h.Todos.CreateTodoItem(r.Context(), todosdomain.CreateTodoItemInput{
		ListID: listID,
		Name:   req.Name,
		Text:   req.Text,
		IsDone: req.IsDone,
	})
	if err != nil {
		h.writeServiceError(w, r, "todos.create_item", err, "list_id", listID)
		return
	}

	h.requestLog(r).Debug("todos.create_item: created", "list_id", listID, "item_id", item.ID)
	writeJSON(w, http.StatusCreated, toTodoItemResponse(*item))
}

func (h *Handlers) ListTodoItems(w http.ResponseWriter, r *http.Request) {
	listID, err := parseIDParam(r, "list_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid list_id")
		return
	}

	items, err := h.Todos.ListTodoItems(r.Context(), listID)
	if err != nil {
		h.writeServiceError(w, r, "todos.list_items", err, "list_id", listID)
		return
	}

	response := make([]todoItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toTodoItemResponse(item))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetTodoItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseIDParam(r, "item_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid item_id")
		return
	}

	item, err := h.Todos.GetTodoItem(r.Context(), itemID)
	if err != nil {
		h.writeServiceError(w, r, "todos.get_item", err, "item_id", itemID)
		return
	}

	writeJSON(w, http.StatusOK, toTodoItemResponse(*item))
}

func (h *Handlers) UpdateTodoItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseIDParam(r, "item_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid item_id")
		return
	}

	var req updateTodoItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	item, err := h.Todos.UpdateTodoItem(r.Context(), todosdomain.UpdateTodoItemInput{
		ID:     itemID,
		Name:   req.Name,
		Text:   req.Text,
		IsDone: req.IsDone,
	})
	if err != nil {
		h.writeServiceError(w, r, "todos.update_item", err, "item_id", itemID)
		return
	}

	writeJSON(w, http.StatusOK, toTodoItemResponse(*item))
}

func (h *Handlers) DeleteTodoItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseIDParam(r, "item_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid item_id")
		return
	}

	if err := h.Todos.DeleteTodoItem(r.Context(), itemID); err != nil {
		h.writeServiceError(w, r, "todos.delete_item", err, "item_id", itemID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
