package services

import "errors"

// ErrArticleNotFound — статьи с таким id нет (HTTP 404).
var ErrArticleNotFound = errors.New("article not found")
