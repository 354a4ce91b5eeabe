package handlers

import (
	"net/http"

	"articles/internal/logger"
	"articles/internal/services"
	"articles/internal/utils/helpers"

	"go.uber.org/zap"
)

const queryAck = "done"

type QueryHandler struct {
	svc services.ArticleService
}

func NewQueryHandler(svc services.ArticleService) *QueryHandler {
	return &QueryHandler{svc: svc}
}

// QueryExample
// @Summary  Пример разбора query-параметров
// @Tags     query
// @Produce  plain
// @Param    query    query  string  true   "Обязательная строка"
// @Param    limit    query  int     true   "Обязательное целое"
// @Param    notReq   query  string  false  "Необязательная строка"
// @Param    default  query  string  false  "Строка со значением по умолчанию" default(hello)
// @Success  200  {string}  string  "done"
// @Failure  400  {object}  helpers.ErrorResponse
// @Router   /query-example [get]
func (h *QueryHandler) QueryExample(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query, err := helpers.RequiredString(q, "query")
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := helpers.RequiredInt(q, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}
	notRequired := helpers.OptionalString(q, "notReq")
	defaultVal := helpers.StringDefault(q, "default", "hello")

	log := logger.WithCtx(r.Context())
	log.Info("query", zap.String("query", query))
	log.Info("limit", zap.Int("limit", limit))
	log.Info("notRequired", zap.Stringp("notRequired", notRequired))
	log.Info("default", zap.String("default", defaultVal))

	helpers.Text(w, http.StatusOK, queryAck)
}

// QueryPage
// @Summary      Пагинация статей
// @Description  Последовательно вызывает три варианта пагинации, возвращает результат последнего. page — номер страницы с нуля.
// @Tags         query
// @Produce      json
// @Param        page     query  int  false  "Номер страницы (с 0)" default(1)
// @Param        perpage  query  int  false  "Размер страницы"     default(25) minimum(1) maximum(100)
// @Success      200  {object}  pagination.Page[dto.ArticleDto]
// @Failure      400  {object}  helpers.ErrorResponse
// @Router       /query-page [get]
func (h *QueryHandler) QueryPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := helpers.IntDefault(q, "page", 1)
	if err != nil {
		writeError(w, r, err)
		return
	}
	perPage, err := helpers.IntDefault(q, "perpage", 25)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log := logger.WithCtx(r.Context())
	log.Info("page", zap.Int("page", page))
	log.Info("perPage", zap.Int("perPage", perPage))

	// все данные сразу, потом часть (не лучший способ)
	if _, err := h.svc.ReadTop20(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := h.svc.ReadArticlePagedList(r.Context(), page, perPage); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.svc.ReadArticlePaged(r.Context(), page, perPage)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, result)
}

// QueryScroll
// @Summary      Infinite scroll по курсору
// @Description  20 статей с id меньше before, новые первыми. Без before — последние 20.
// @Tags         query
// @Produce      json
// @Param        before  query  int  false  "Последний увиденный id"
// @Success      200  {array}   dto.ArticleDto
// @Failure      400  {object}  helpers.ErrorResponse
// @Router       /query-scroll [get]
func (h *QueryHandler) QueryScroll(w http.ResponseWriter, r *http.Request) {
	before, err := helpers.OptionalInt64(r.URL.Query(), "before")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if before == nil {
		list, err := h.svc.ReadTop20(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		helpers.JSON(w, http.StatusOK, list)
		return
	}

	list, err := h.svc.ReadBefore(r.Context(), *before)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// QuerySearch
// @Summary  Пример поискового запроса
// @Tags     query
// @Produce  plain
// @Param    q    query  string  true   "Ключевое слово"
// @Param    cat  query  string  false  "Поле поиска" default(title)
// @Success  200  {string}  string  "done"
// @Failure  400  {object}  helpers.ErrorResponse
// @Router   /query-search [get]
func (h *QueryHandler) QuerySearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	keyword, err := helpers.RequiredString(q, "q")
	if err != nil {
		writeError(w, r, err)
		return
	}
	category := helpers.StringDefault(q, "cat", "title")

	log := logger.WithCtx(r.Context())
	log.Info("keyword", zap.String("keyword", keyword))
	log.Info("category", zap.String("category", category))

	helpers.Text(w, http.StatusOK, queryAck)
}
