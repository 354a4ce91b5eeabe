package app

import (
	"context"
	"fmt"

	"articles/internal/config"
	"articles/internal/db"
	"articles/internal/handlers"
	"articles/internal/logger"
	"articles/internal/repository"
	"articles/internal/routes"
	"articles/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// InitApp поднимает хранилище по cfg.DbDriver и собирает роутер.
// cleanup закрывает соединение с БД.
func InitApp(cfg *config.Config) (router *mux.Router, cleanup func(), err error) {
	articleRepo, ping, cleanup, err := initStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Log.Info("Хранилище подключено", zap.String("driver", cfg.DbDriver), zap.String("dsn", cfg.GetDSNSafe()))

	router = NewRouter(articleRepo, ping)
	return router, cleanup, nil
}

// NewRouter — сервисы, хендлеры и маршруты поверх готового репозитория.
func NewRouter(articleRepo repository.ArticleRepo, ping func(ctx context.Context) error) *mux.Router {
	// Сервисы
	articleSvc := services.NewArticleService(articleRepo)

	// Хендлеры
	articleH := handlers.NewArticleHandler(articleSvc)
	queryH := handlers.NewQueryHandler(articleSvc)
	healthH := handlers.NewHealthHandler(ping)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, articleH, queryH, healthH)
	return router
}

func initStore(cfg *config.Config) (repository.ArticleRepo, func(ctx context.Context) error, func(), error) {
	switch cfg.DbDriver {
	case config.DriverSQLite:
		gdb, err := db.NewSQLiteConnection(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("sqlite: %w", err)
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, nil, nil, err
		}
		return repository.NewGormArticleRepo(gdb), sqlDB.PingContext, func() { _ = sqlDB.Close() }, nil

	default:
		pool, err := db.NewPostgresConnection(cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("postgres: %w", err)
		}
		if err := db.MigrateUp(context.Background(), pool); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("postgres migrate: %w", err)
		}
		return repository.NewArticleRepo(pool), pool.Ping, pool.Close, nil
	}
}
