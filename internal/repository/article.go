package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"articles/internal/models"
	"articles/internal/pagination"
)

type ArticleRepo interface {
	// Save вставляет статью при ID == 0, иначе перезаписывает title/content/writer.
	Save(ctx context.Context, a *models.Article) (*models.Article, error)
	FindByID(ctx context.Context, id int64) (*models.Article, error)
	FindAll(ctx context.Context) ([]*models.Article, error)
	FindPage(ctx context.Context, req pagination.Request) (pagination.Page[*models.Article], error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	// FindLatest — не больше limit статей, новые первыми.
	FindLatest(ctx context.Context, limit int) ([]*models.Article, error)
	// FindBefore — не больше limit статей с id < cursor, новые первыми.
	FindBefore(ctx context.Context, cursor int64, limit int) ([]*models.Article, error)
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

const articleColumns = `id, title, content, writer, created_at`

func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Writer, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) Save(ctx context.Context, a *models.Article) (*models.Article, error) {
	if a.ID == 0 {
		const q = `
			INSERT INTO articles (title, content, writer)
			VALUES ($1, $2, $3)
			RETURNING ` + articleColumns
		return scanArticle(r.db.QueryRow(ctx, q, a.Title, a.Content, a.Writer))
	}

	const q = `
		UPDATE articles
		SET title = $1,
		    content = $2,
		    writer = $3
		WHERE id = $4
		RETURNING ` + articleColumns
	return scanArticle(r.db.QueryRow(ctx, q, a.Title, a.Content, a.Writer, a.ID))
}

func (r *articleRepo) FindByID(ctx context.Context, id int64) (*models.Article, error) {
	q := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	return scanArticle(r.db.QueryRow(ctx, q, id))
}

func (r *articleRepo) FindAll(ctx context.Context) ([]*models.Article, error) {
	return r.list(ctx, `SELECT `+articleColumns+` FROM articles ORDER BY id`)
}

func (r *articleRepo) FindPage(ctx context.Context, req pagination.Request) (pagination.Page[*models.Article], error) {
	order, err := orderBy(req.Sort)
	if err != nil {
		return pagination.Page[*models.Article]{}, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&total); err != nil {
		return pagination.Page[*models.Article]{}, fmt.Errorf("count articles: %w", err)
	}

	q := fmt.Sprintf(`SELECT %s FROM articles ORDER BY %s LIMIT $1 OFFSET $2`, articleColumns, order)
	list, err := r.list(ctx, q, req.Size, req.Offset())
	if err != nil {
		return pagination.Page[*models.Article]{}, err
	}
	return pagination.New(list, req, total), nil
}

func (r *articleRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`
	var ok bool
	if err := r.db.QueryRow(ctx, q, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *articleRepo) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	return err
}

func (r *articleRepo) FindLatest(ctx context.Context, limit int) ([]*models.Article, error) {
	q := `SELECT ` + articleColumns + ` FROM articles ORDER BY id DESC LIMIT $1`
	return r.list(ctx, q, limit)
}

func (r *articleRepo) FindBefore(ctx context.Context, cursor int64, limit int) ([]*models.Article, error) {
	q := `SELECT ` + articleColumns + ` FROM articles WHERE id < $1 ORDER BY id DESC LIMIT $2`
	return r.list(ctx, q, cursor, limit)
}

func (r *articleRepo) list(ctx context.Context, q string, args ...any) ([]*models.Article, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*models.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
