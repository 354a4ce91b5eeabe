package handlers

import (
	"context"
	"net/http"
	"time"

	"articles/internal/logger"
	"articles/internal/utils/helpers"

	"go.uber.org/zap"
)

type HealthHandler struct {
	ping func(ctx context.Context) error
}

func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Health
// @Summary  Проверка живости и доступности БД
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Failure  503  {object}  map[string]string
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		logger.WithCtx(r.Context()).Error("health: БД недоступна", zap.Error(err))
		helpers.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
