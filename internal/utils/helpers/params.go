package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

var (
	ErrMissingParam = errors.New("required parameter is missing")
	ErrTypeMismatch = errors.New("invalid parameter value")
)

// ParamError — ошибка биндинга параметра запроса/пути (HTTP 400).
type ParamError struct {
	Name  string
	Value string
	Err   error
}

func (e *ParamError) Error() string {
	if errors.Is(e.Err, ErrMissingParam) {
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("%s: %v %q", e.Name, e.Err, e.Value)
}

func (e *ParamError) Unwrap() error { return e.Err }

// RequiredString — параметр обязан присутствовать, пустое значение допустимо.
func RequiredString(q url.Values, name string) (string, error) {
	if !q.Has(name) {
		return "", &ParamError{Name: name, Err: ErrMissingParam}
	}
	return q.Get(name), nil
}

// OptionalString возвращает nil, если параметра нет.
func OptionalString(q url.Values, name string) *string {
	if !q.Has(name) {
		return nil
	}
	v := q.Get(name)
	return &v
}

// StringDefault — def, если параметр отсутствует или пуст.
func StringDefault(q url.Values, name, def string) string {
	if v := strings.TrimSpace(q.Get(name)); v != "" {
		return q.Get(name)
	}
	return def
}

// RequiredInt — 32-битное целое; пустое значение считается отсутствующим.
func RequiredInt(q url.Values, name string) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return 0, &ParamError{Name: name, Err: ErrMissingParam}
	}
	return parseInt(name, raw)
}

func IntDefault(q url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	return parseInt(name, raw)
}

// OptionalInt64 — nil, если параметр отсутствует или пуст.
func OptionalInt64(q url.Values, name string) (*int64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &ParamError{Name: name, Value: raw, Err: ErrTypeMismatch}
	}
	return &v, nil
}

// PathInt64 читает переменную пути gorilla/mux.
func PathInt64(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok || raw == "" {
		return 0, &ParamError{Name: name, Err: ErrMissingParam}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ParamError{Name: name, Value: raw, Err: ErrTypeMismatch}
	}
	return v, nil
}

func parseInt(name, raw string) (int, error) {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, &ParamError{Name: name, Value: raw, Err: ErrTypeMismatch}
	}
	return int(v), nil
}
