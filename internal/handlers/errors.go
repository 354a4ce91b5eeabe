package handlers

import (
	"errors"
	"net/http"

	"articles/internal/logger"
	"articles/internal/pagination"
	"articles/internal/services"
	"articles/internal/utils/helpers"

	"go.uber.org/zap"
)

// writeError: not found → 404 без тела, ошибки клиента → 400, остальное → 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *helpers.ParamError
	switch {
	case errors.Is(err, services.ErrArticleNotFound):
		helpers.Status(w, http.StatusNotFound)
	case errors.As(err, &perr), errors.Is(err, pagination.ErrInvalidRequest):
		logger.WithCtx(r.Context()).Warn("Некорректный запрос", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("Внутренняя ошибка", zap.String("path", r.URL.Path), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
