package postgres

import (
	"context"
	"time"

	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/repository"
	"expatmart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type searchQueryRepository struct {
	db *gorm.DB
}

// NewSearchQueryRepository is the constructor for searchQueryRepository.
func NewSearchQueryRepository(db *gorm.DB) repository.SearchQueryRepository {
	return &searchQueryRepository{db: db}
}

func (repo *searchQueryRepository) CreateSearchQuery(ctx context.Context, query *entity.SearchQuery) error {
	queryM := &model.SearchQueryModel{
		ID:          query.ID,
		UserID:      query.UserID,
		Query:       query.Query,
		Filters:     query.Filters,
		ResultCount: query.ResultCount,
		CreatedAt:   query.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(queryM).Error; err != nil {
		return errors.Wrap(err, "failed to create search query")
	}
	query.ID = queryM.ID

	return nil
}

func (repo *searchQueryRepository) PopularSearches(ctx context.Context, since time.Time, limit int) ([]*entity.PopularSearch, error) {
	var rows []*entity.PopularSearch

	if err := repo.db.WithContext(ctx).
		Model(&model.SearchQueryModel{}).
		Select("lower(trim(query)) AS query, count(*) AS count").
		Where("created_at >= ? AND trim(query) <> ''", since).
		Group("lower(trim(query))").
		Order("count DESC, query ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate popular searches")
	}

	return rows, nil
}
