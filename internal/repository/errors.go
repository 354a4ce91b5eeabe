package repository

import (
	"errors"
	"fmt"

	"articles/internal/pagination"
)

// ErrNotFound — записи с таким id нет.
var ErrNotFound = errors.New("record not found")

// сортировать можно только по этим свойствам
var sortColumns = map[string]string{
	"id": "id",
}

func orderBy(s pagination.Sort) (string, error) {
	if !s.IsSorted() {
		return "id", nil
	}
	col, ok := sortColumns[s.Property]
	if !ok {
		return "", fmt.Errorf("%w: unknown sort property %q", pagination.ErrInvalidRequest, s.Property)
	}
	if s.Descending {
		return col + " DESC", nil
	}
	return col + " ASC", nil
}
