package handler

import (
	todosdomain "todo-lists-api/internal/domain/todos"
	"todo-lists-api/internal/transport/httpserver/handler/common"
	todoshandler "todo-lists-api/internal/transport/httpserver/handler/todos"
	"todo-lists-api/pkg/logger"
)

type Handlers struct {
	Common *common.Handlers
	Todos  *todoshandler.Handlers
}

func New(db common.Pinger, todos *todosdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Common: common.New(db, log),
		Todos:  todoshandler.New(todos, log),
	}
}
