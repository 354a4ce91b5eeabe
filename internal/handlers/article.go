package handlers

import (
	"encoding/json"
	"net/http"

	"articles/internal/dto"
	"articles/internal/logger"
	"articles/internal/services"
	"articles/internal/utils/helpers"

	"go.uber.org/zap"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// Create
// @Summary      Создать статью
// @Description  Создаёт статью из title/content/writer; id во входящем теле игнорируется
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ArticleDto  true  "Данные статьи"
// @Success      200   {object}  dto.ArticleDto
// @Failure      400   {object}  helpers.ErrorResponse
// @Router       /articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ArticleDto
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON при создании статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	out, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, out)
}

// GetAll
// @Summary  Список всех статей
// @Tags     articles
// @Produce  json
// @Success  200  {array}  dto.ArticleDto
// @Router   /articles [get]
func (h *ArticleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ReadAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetByID
// @Summary  Получить статью по ID
// @Tags     articles
// @Produce  json
// @Param    id   path      int  true  "ID статьи"
// @Success  200  {object}  dto.ArticleDto
// @Failure  400  {object}  helpers.ErrorResponse
// @Failure  404  {string}  string  "Не найдено, тело пустое"
// @Router   /articles/{id} [get]
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.svc.ReadOne(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, out)
}

// Update
// @Summary  Обновить статью
// @Tags     articles
// @Accept   json
// @Produce  json
// @Param    id    path      int             true  "ID статьи"
// @Param    body  body      dto.ArticleDto  true  "Новые title/content/writer"
// @Success  200   {object}  dto.ArticleDto
// @Failure  400   {object}  helpers.ErrorResponse
// @Failure  404   {string}  string  "Не найдено, тело пустое"
// @Router   /articles/{id} [put]
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req dto.ArticleDto
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON при обновлении статьи", zap.Int64("id", id), zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	out, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, out)
}

// Delete
// @Summary  Удалить статью
// @Tags     articles
// @Param    id   path  int  true  "ID статьи"
// @Success  200  {string}  string  "Удалено, тело пустое"
// @Failure  400  {object}  helpers.ErrorResponse
// @Failure  404  {string}  string  "Не найдено, тело пустое"
// @Router   /articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	helpers.Status(w, http.StatusOK)
}
