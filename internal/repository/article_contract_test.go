package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"articles/internal/models"
	"articles/internal/pagination"
	"articles/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runArticleRepoContract гоняет одни и те же проверки для любой реализации.
// newRepo должен отдавать пустую таблицу с id, начинающимися с 1.
func runArticleRepoContract(t *testing.T, newRepo func(t *testing.T) repository.ArticleRepo) {
	ctx := context.Background()

	seed := func(t *testing.T, repo repository.ArticleRepo, n int) {
		t.Helper()
		for i := 1; i <= n; i++ {
			_, err := repo.Save(ctx, &models.Article{
				Title:   fmt.Sprintf("title %d", i),
				Content: fmt.Sprintf("content %d", i),
				Writer:  "writer",
			})
			require.NoError(t, err)
		}
	}

	ids := func(list []*models.Article) []int64 {
		out := make([]int64, 0, len(list))
		for _, a := range list {
			out = append(out, a.ID)
		}
		return out
	}

	descending := func(from, to int64) []int64 {
		out := make([]int64, 0)
		for id := from; id >= to; id-- {
			out = append(out, id)
		}
		return out
	}

	t.Run("save assigns id and find returns it", func(t *testing.T) {
		repo := newRepo(t)

		saved, err := repo.Save(ctx, &models.Article{Title: "t", Content: "c", Writer: "w"})
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)
		assert.False(t, saved.CreatedAt.IsZero())

		got, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, "t", got.Title)
		assert.Equal(t, "c", got.Content)
		assert.Equal(t, "w", got.Writer)
	})

	t.Run("save with id overwrites fields only", func(t *testing.T) {
		repo := newRepo(t)

		saved, err := repo.Save(ctx, &models.Article{Title: "old", Content: "old", Writer: "old"})
		require.NoError(t, err)

		saved.Title, saved.Content, saved.Writer = "new title", "new content", "new writer"
		updated, err := repo.Save(ctx, saved)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, updated.ID)
		assert.True(t, saved.CreatedAt.Equal(updated.CreatedAt))

		got, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, "new title", got.Title)
		assert.Equal(t, "new content", got.Content)
		assert.Equal(t, "new writer", got.Writer)
	})

	t.Run("find missing id", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.FindByID(ctx, 404)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("exists and delete", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, 2)

		ok, err := repo.ExistsByID(ctx, 1)
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, repo.DeleteByID(ctx, 1))

		ok, err = repo.ExistsByID(ctx, 1)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = repo.FindByID(ctx, 1)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, ids(all))
	})

	t.Run("latest and before cursor", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, 60)

		latest, err := repo.FindLatest(ctx, 20)
		require.NoError(t, err)
		assert.Equal(t, descending(60, 41), ids(latest))

		before, err := repo.FindBefore(ctx, 41, 20)
		require.NoError(t, err)
		assert.Equal(t, descending(40, 21), ids(before))

		tail, err := repo.FindBefore(ctx, 5, 20)
		require.NoError(t, err)
		assert.Equal(t, descending(4, 1), ids(tail))
	})

	t.Run("page sorted by id desc", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, 60)

		req, err := pagination.Of(1, 25, pagination.Desc("id"))
		require.NoError(t, err)

		page, err := repo.FindPage(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, descending(35, 11), ids(page.Content))
		assert.EqualValues(t, 60, page.TotalElements)
		assert.Equal(t, 3, page.TotalPages)
		assert.False(t, page.First)
		assert.False(t, page.Last)
	})

	t.Run("unsorted page uses default order", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, 30)

		req, _ := pagination.Of(0, 20)
		page, err := repo.FindPage(ctx, req)
		require.NoError(t, err)
		assert.Len(t, page.Content, 20)
		assert.EqualValues(t, 1, page.Content[0].ID)
		assert.EqualValues(t, 30, page.TotalElements)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, 3)

		req, _ := pagination.Of(5, 10, pagination.Desc("id"))
		page, err := repo.FindPage(ctx, req)
		require.NoError(t, err)
		assert.True(t, page.Empty)
		assert.EqualValues(t, 3, page.TotalElements)
	})

	t.Run("unknown sort property", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.FindPage(ctx, pagination.Request{Page: 0, Size: 10, Sort: pagination.Desc("title; DROP TABLE articles")})
		assert.ErrorIs(t, err, pagination.ErrInvalidRequest)
	})
}
