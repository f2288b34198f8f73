package service

import (
	"context"
	"fmt"
	"time"

	"fishstall-api/internal/domain"
	"fishstall-api/internal/repository"
)

var (
	ErrItemNotFound   = repository.ErrItemNotFound
	ErrItemNameExists = repository.ErrItemNameExists
)

type ItemRepository interface {
	ListAll(ctx context.Context, cat domain.Category) ([]domain.Item, error)
	ListUpdatedSince(ctx context.Context, cat domain.Category, since time.Time) ([]domain.Item, error)
	Create(ctx context.Context, cat domain.Category, item domain.Item) (domain.Item, error)
	UpdatePrice(ctx context.Context, cat domain.Category, id uint, price float64) (domain.Item, error)
	Delete(ctx context.Context, cat domain.Category, id uint) error
	ListHistory(ctx context.Context, cat domain.Category, itemID uint) ([]domain.PriceHistoryRecord, error)
}

type CatalogService struct {
	repo ItemRepository
}

func NewCatalogService(repo ItemRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) ListItems(ctx context.Context, cat domain.Category) ([]domain.Item, error) {
	items, err := s.repo.ListAll(ctx, cat)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAll -> %w", err)
	}

	return items, nil
}

// ListUpdatedToday returns the items touched since the start of the current
// calendar day, the "today's rates" board on the shop side.
func (s *CatalogService) ListUpdatedToday(ctx context.Context, cat domain.Category) ([]domain.Item, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	items, err := s.repo.ListUpdatedSince(ctx, cat, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListUpdatedSince -> %w", err)
	}

	return items, nil
}

func (s *CatalogService) CreateItem(ctx context.Context, cat domain.Category, item domain.Item) (domain.Item, error) {
	created, err := s.repo.Create(ctx, cat, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) UpdatePrice(ctx context.Context, cat domain.Category, id uint, price float64) (domain.Item, error) {
	updated, err := s.repo.UpdatePrice(ctx, cat, id, price)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.UpdatePrice -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteItem(ctx context.Context, cat domain.Category, id uint) error {
	if err := s.repo.Delete(ctx, cat, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *CatalogService) GetPriceHistory(ctx context.Context, cat domain.Category, itemID uint) ([]domain.PriceHistoryRecord, error) {
	records, err := s.repo.ListHistory(ctx, cat, itemID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListHistory -> %w", err)
	}

	return records, nil
}
