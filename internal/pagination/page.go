// Package pagination describes offset pagination requests and the page
// envelope returned to clients. Page numbers are zero-based.
package pagination

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest is returned for a negative page number or a size
// outside [1, MaxSize].
var ErrInvalidRequest = errors.New("invalid page request")

// MaxSize is the largest page a client may ask for.
const MaxSize = 100

// Sort orders a page by a single property. The zero value means unsorted,
// leaving the order to the store.
type Sort struct {
	Property   string
	Descending bool
}

func (s Sort) IsSorted() bool { return s.Property != "" }

// Desc sorts by property, largest first.
func Desc(property string) Sort { return Sort{Property: property, Descending: true} }

type Request struct {
	Page int
	Size int
	Sort Sort
}

// Of builds a validated request.
func Of(page, size int, sort ...Sort) (Request, error) {
	if page < 0 {
		return Request{}, fmt.Errorf("%w: page must not be negative", ErrInvalidRequest)
	}
	if size < 1 {
		return Request{}, fmt.Errorf("%w: size must be at least 1", ErrInvalidRequest)
	}
	if size > MaxSize {
		return Request{}, fmt.Errorf("%w: size must not exceed %d", ErrInvalidRequest, MaxSize)
	}
	r := Request{Page: page, Size: size}
	if len(sort) > 0 {
		r.Sort = sort[0]
	}
	return r, nil
}

func (r Request) Offset() int {
	return r.Page * r.Size
}

// Page is one slice of a larger result together with its position.
type Page[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

func New[T any](content []T, req Request, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := TotalPages(total, req.Size)
	return Page[T]{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Number:           req.Page,
		Size:             req.Size,
		NumberOfElements: len(content),
		First:            req.Page == 0,
		Last:             req.Page+1 >= totalPages,
		Empty:            len(content) == 0,
	}
}

// Map converts every element and keeps the metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Content))
	for _, v := range p.Content {
		out = append(out, fn(v))
	}
	return Page[U]{
		Content:          out,
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages,
		Number:           p.Number,
		Size:             p.Size,
		NumberOfElements: len(out),
		First:            p.First,
		Last:             p.Last,
		Empty:            len(out) == 0,
	}
}

// TotalPages is ceil(total/size); zero items give zero pages.
func TotalPages(total int64, size int) int {
	if size < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
