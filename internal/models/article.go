package models

import "time"

// Article — запись таблицы articles. Наружу не отдаётся, см. dto.ArticleDto.
type Article struct {
	ID        int64     `db:"id"         gorm:"primaryKey;autoIncrement"`
	Title     string    `db:"title"      gorm:"type:text;not null"`
	Content   string    `db:"content"    gorm:"type:text;not null"`
	Writer    string    `db:"writer"     gorm:"type:text;not null"`
	CreatedAt time.Time `db:"created_at" gorm:"not null;autoCreateTime"`
}

func (Article) TableName() string {
	return "articles"
}
