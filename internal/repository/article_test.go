package repository_test

import (
	"context"
	"os"
	"testing"

	"articles/internal/db"
	"articles/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// newPostgresRepo требует TEST_DATABASE_URL, иначе тест пропускается.
func newPostgresRepo(t *testing.T) repository.ArticleRepo {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("Skipping test: TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Skipf("Skipping test: database not available: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("Skipping test: database ping failed: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.MigrateUp(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE articles RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	return repository.NewArticleRepo(pool)
}

func TestArticleRepo_Postgres(t *testing.T) {
	runArticleRepoContract(t, newPostgresRepo)
}
