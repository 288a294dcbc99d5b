package todos

import (
	"errors"
	"net/http"

	todosdomain "todo-lists-api/internal/domain/todos"
	commonhandler "todo-lists-api/internal/transport/httpserver/handler/common"
	"todo-lists-api/pkg/logger"
)

func writeError(w http.ResponseWriter, status int, code, message string) {
	commonhandler.WriteError(w, status, code, message)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	commonhandler.WriteJSON(w, status, payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return commonhandler.DecodeJSON(r, dst)
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	return commonhandler.ParseIDParam(r, name)
}

func (h *Handlers) requestLog(r *http.Request) logger.Logger {
	return logger.FromContext(r.Context(), h.log)
}

// writeServiceError maps domain errors to HTTP responses and logs them.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error, args ...any) {
	log := h.requestLog(r)
	switch {
	case errors.Is(err, todosdomain.ErrTodoListNotFound):
		log.BusinessError(op+": todo list not found", err, args...)
		writeError(w, http.StatusNotFound, "todo_list_not_found", "todo list not found")
	case errors.Is(err, todosdomain.ErrTodoItemNotFound):
		log.BusinessError(op+": todo item not found", err, args...)
		writeError(w, http.StatusNotFound, "todo_item_not_found", "todo item not found")
	case errors.Is(err, todosdomain.ErrInvalidInput):
		log.BusinessError(op+": invalid input", err, args...)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		log.InternalError(op+": failed", err, args...)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
