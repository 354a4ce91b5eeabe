package routes

import (
	"net/http"

	"articles/internal/handlers"
	"articles/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitRoutes(
	router *mux.Router,
	articleH *handlers.ArticleHandler,
	queryH *handlers.QueryHandler,
	healthH *handlers.HealthHandler,
) {
	router.Use(middleware.RequestID, middleware.Logging, middleware.Metrics, middleware.Recoverer)

	router.HandleFunc("/health", healthH.Health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// --- CRUD ---
	articles := router.PathPrefix("/articles").Subrouter()
	articles.HandleFunc("", articleH.Create).Methods(http.MethodPost)
	articles.HandleFunc("", articleH.GetAll).Methods(http.MethodGet)
	articles.HandleFunc("/{id}", articleH.GetByID).Methods(http.MethodGet)
	articles.HandleFunc("/{id}", articleH.Update).Methods(http.MethodPut)
	articles.HandleFunc("/{id}", articleH.Delete).Methods(http.MethodDelete)

	// --- query-параметры и пагинация ---
	router.HandleFunc("/query-example", queryH.QueryExample).Methods(http.MethodGet)
	router.HandleFunc("/query-page", queryH.QueryPage).Methods(http.MethodGet)
	router.HandleFunc("/query-scroll", queryH.QueryScroll).Methods(http.MethodGet)
	router.HandleFunc("/query-search", queryH.QuerySearch).Methods(http.MethodGet)
}
