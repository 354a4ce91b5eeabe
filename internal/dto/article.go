package dto

import "articles/internal/models"

// swagger:model ArticleDto
type ArticleDto struct {
	ID      int64  `json:"id"      example:"1"`
	Title   string `json:"title"   example:"Первая статья"`
	Content string `json:"content" example:"Текст статьи"`
	Writer  string `json:"writer"  example:"alex"`
}

func FromEntity(a *models.Article) ArticleDto {
	return ArticleDto{
		ID:      a.ID,
		Title:   a.Title,
		Content: a.Content,
		Writer:  a.Writer,
	}
}

// ToEntity собирает новую сущность; входящий ID игнорируется.
func (d ArticleDto) ToEntity() *models.Article {
	return &models.Article{
		Title:   d.Title,
		Content: d.Content,
		Writer:  d.Writer,
	}
}

func FromEntities(list []*models.Article) []ArticleDto {
	out := make([]ArticleDto, 0, len(list))
	for _, a := range list {
		out = append(out, FromEntity(a))
	}
	return out
}
