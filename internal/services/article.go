package services

import (
	"context"
	"errors"
	"fmt"

	"articles/internal/dto"
	"articles/internal/logger"
	"articles/internal/models"
	"articles/internal/pagination"
	"articles/internal/repository"

	"go.uber.org/zap"
)

const (
	topLimit = 20

	// ReadArticlePagedList всегда читает эту страницу, см. комментарий к методу.
	pagedListPage = 0
	pagedListSize = 20
)

type ArticleService interface {
	Create(ctx context.Context, in dto.ArticleDto) (dto.ArticleDto, error)
	ReadAll(ctx context.Context) ([]dto.ArticleDto, error)
	ReadOne(ctx context.Context, id int64) (dto.ArticleDto, error)
	Update(ctx context.Context, id int64, in dto.ArticleDto) (dto.ArticleDto, error)
	Delete(ctx context.Context, id int64) error

	ReadTop20(ctx context.Context) ([]dto.ArticleDto, error)
	ReadBefore(ctx context.Context, cursor int64) ([]dto.ArticleDto, error)
	ReadArticlePagedList(ctx context.Context, pageNumber, pageSize int) ([]dto.ArticleDto, error)
	ReadArticlePaged(ctx context.Context, pageNumber, pageSize int) (pagination.Page[dto.ArticleDto], error)
}

type articleService struct {
	repo repository.ArticleRepo
}

func NewArticleService(repo repository.ArticleRepo) ArticleService {
	return &articleService{repo: repo}
}

func (s *articleService) Create(ctx context.Context, in dto.ArticleDto) (dto.ArticleDto, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание статьи", zap.String("title", in.Title), zap.String("writer", in.Writer))

	saved, err := s.repo.Save(ctx, in.ToEntity())
	if err != nil {
		log.Error("Ошибка создания статьи (repo)", zap.Error(err))
		return dto.ArticleDto{}, fmt.Errorf("create article: %w", err)
	}

	log.Info("Статья создана", zap.Int64("id", saved.ID))
	return dto.FromEntity(saved), nil
}

func (s *articleService) ReadAll(ctx context.Context) ([]dto.ArticleDto, error) {
	log := logger.WithCtx(ctx)

	list, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error("Ошибка получения списка статей (repo)", zap.Error(err))
		return nil, fmt.Errorf("read articles: %w", err)
	}

	log.Debug("Список статей получен", zap.Int("count", len(list)))
	return dto.FromEntities(list), nil
}

func (s *articleService) ReadOne(ctx context.Context, id int64) (dto.ArticleDto, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return dto.ArticleDto{}, err
	}
	return dto.FromEntity(a), nil
}

func (s *articleService) Update(ctx context.Context, id int64, in dto.ArticleDto) (dto.ArticleDto, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление статьи", zap.Int64("id", id), zap.String("title", in.Title))

	target, err := s.find(ctx, id)
	if err != nil {
		return dto.ArticleDto{}, err
	}

	target.Title = in.Title
	target.Content = in.Content
	target.Writer = in.Writer

	saved, err := s.repo.Save(ctx, target)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// удалили между чтением и записью
			return dto.ArticleDto{}, ErrArticleNotFound
		}
		log.Error("Ошибка обновления статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return dto.ArticleDto{}, fmt.Errorf("update article %d: %w", id, err)
	}

	log.Info("Статья обновлена", zap.Int64("id", id))
	return dto.FromEntity(saved), nil
}

func (s *articleService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление статьи", zap.Int64("id", id))

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		log.Error("Ошибка проверки существования статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("check article %d: %w", id, err)
	}
	if !exists {
		log.Warn("Статья для удаления не найдена", zap.Int64("id", id))
		return ErrArticleNotFound
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		log.Error("Ошибка удаления статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("delete article %d: %w", id, err)
	}

	log.Info("Статья удалена", zap.Int64("id", id))
	return nil
}

// ReadTop20 — последние 20 статей. Это не пагинация: продолжить с 21-й нельзя,
// для этого есть ReadBefore.
func (s *articleService) ReadTop20(ctx context.Context) ([]dto.ArticleDto, error) {
	list, err := s.repo.FindLatest(ctx, topLimit)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения последних статей (repo)", zap.Error(err))
		return nil, fmt.Errorf("read latest articles: %w", err)
	}
	return dto.FromEntities(list), nil
}

// ReadBefore — 20 статей старше cursor (infinite scroll по последнему увиденному id).
func (s *articleService) ReadBefore(ctx context.Context, cursor int64) ([]dto.ArticleDto, error) {
	list, err := s.repo.FindBefore(ctx, cursor, topLimit)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения статей по курсору (repo)", zap.Int64("cursor", cursor), zap.Error(err))
		return nil, fmt.Errorf("read articles before %d: %w", cursor, err)
	}
	return dto.FromEntities(list), nil
}

// ReadArticlePagedList принимает pageNumber и pageSize, но всегда отдаёт
// первую страницу из 20 статей без сортировки. Поведение оставлено как есть
// до решения продукта; для настоящей пагинации есть ReadArticlePaged.
func (s *articleService) ReadArticlePagedList(ctx context.Context, pageNumber, pageSize int) ([]dto.ArticleDto, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Параметры страницы игнорируются",
		zap.Int("page", pageNumber),
		zap.Int("size", pageSize),
	)

	req, err := pagination.Of(pagedListPage, pagedListSize)
	if err != nil {
		return nil, err
	}

	page, err := s.repo.FindPage(ctx, req)
	if err != nil {
		log.Error("Ошибка получения страницы статей (repo)", zap.Error(err))
		return nil, fmt.Errorf("read articles page: %w", err)
	}
	return dto.FromEntities(page.Content), nil
}

func (s *articleService) ReadArticlePaged(ctx context.Context, pageNumber, pageSize int) (pagination.Page[dto.ArticleDto], error) {
	log := logger.WithCtx(ctx)

	req, err := pagination.Of(pageNumber, pageSize, pagination.Desc("id"))
	if err != nil {
		log.Warn("Некорректные параметры страницы", zap.Int("page", pageNumber), zap.Int("size", pageSize), zap.Error(err))
		return pagination.Page[dto.ArticleDto]{}, err
	}

	page, err := s.repo.FindPage(ctx, req)
	if err != nil {
		log.Error("Ошибка получения страницы статей (repo)", zap.Error(err))
		return pagination.Page[dto.ArticleDto]{}, fmt.Errorf("read articles page: %w", err)
	}

	log.Debug("Страница статей получена",
		zap.Int("page", page.Number),
		zap.Int("count", page.NumberOfElements),
		zap.Int64("total", page.TotalElements),
	)
	return pagination.Map(page, dto.FromEntity), nil
}

func (s *articleService) find(ctx context.Context, id int64) (*models.Article, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.WithCtx(ctx).Warn("Статья не найдена", zap.Int64("id", id))
			return nil, ErrArticleNotFound
		}
		logger.WithCtx(ctx).Error("Ошибка получения статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("read article %d: %w", id, err)
	}
	return a, nil
}
