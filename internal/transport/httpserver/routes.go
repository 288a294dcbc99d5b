package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"todo-lists-api/internal/config"
	"todo-lists-api/internal/transport/httpserver/handler"
	"todo-lists-api/internal/transport/httpserver/middleware"
	"todo-lists-api/pkg/logger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.StripSlashes)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewRequestLogger(log))
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.CORSAllowedOrigins))

	r.Get("/health", handlers.Common.Health)

	r.Route("/todo_lists", func(r chi.Router) {
		r.Get("/", handlers.Todos.ListTodoLists)
		r.Post("/", handlers.Todos.CreateTodoList)

		r.Route("/{list_id}", func(r chi.Router) {
			r.Get("/", handlers.Todos.GetTodoList)
			r.Patch("/", handlers.Todos.UpdateTodoList)
			r.Delete("/", handlers.Todos.DeleteTodoList)

			r.Get("/items", handlers.Todos.ListTodoItems)
			r.Post("/items", handlers.Todos.CreateTodoItem)
		})
	})

	r.Route("/items/{item_id}", func(r chi.Router) {
		r.Get("/", handlers.Todos.GetTodoItem)
		r.Patch("/", handlers.Todos.UpdateTodoItem)
		r.Delete("/", handlers.Todos.DeleteTodoItem)
	})

	return r
}
