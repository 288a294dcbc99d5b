package app

import (
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"todo-lists-api/internal/config"
	"todo-lists-api/internal/db"
	todosdomain "todo-lists-api/internal/domain/todos"
	todosrepo "todo-lists-api/internal/repository/gormstore/todos"
	"todo-lists-api/internal/transport/httpserver"
	"todo-lists-api/internal/transport/httpserver/handler"
	"todo-lists-api/migrations"
	"todo-lists-api/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, log)
}

func NewWithConfig(cfg config.Config, log logger.Logger) (*App, error) {
	log.Info("app: initializing database", "driver", cfg.DB.Driver)
	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		log.Info("app: applying migrations")
		if err := db.Migrate(dbConn, migrations.FS, log); err != nil {
			_ = db.Close(dbConn)
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	sqlDB, err := dbConn.DB()
	if err != nil {
		_ = db.Close(dbConn)
		return nil, fmt.Errorf("db handle: %w", err)
	}

	var opts []todosdomain.Option
	if cfg.CountersMode == config.CountersRecompute {
		opts = append(opts, todosdomain.WithRecomputedCounters())
	}
	todosService := todosdomain.NewService(todosrepo.NewGorm(dbConn), opts...)

	log.Info("app: initializing router", "counters_mode", cfg.CountersMode)
	handlers := handler.New(sqlDB, todosService, log)
	router := httpserver.NewRouter(cfg, handlers, log)

	return &App{
		cfg:        cfg,
		httpServer: httpserver.New(cfg, router),
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	return db.Close(a.db)
}
