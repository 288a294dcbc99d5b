package todos

import (
	todosdomain "todo-lists-api/internal/domain/todos"
	"todo-lists-api/pkg/logger"
)

type Handlers struct {
	Todos *todosdomain.Service
	log   logger.Logger
}

func New(todos *todosdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Todos: todos,
		log:   log,
	}
}
