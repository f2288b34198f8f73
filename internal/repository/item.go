package repository

import (
	"context"
	"fmt"
	"time"

	"fishstall-api/internal/domain"
	"fishstall-api/internal/repository/dao"
)

var (
	ErrItemNotFound   = dao.ErrItemNotFound
	ErrItemNameExists = dao.ErrItemNameExists
)

type ItemDAO interface {
	ListAll(ctx context.Context, t dao.Tables) ([]dao.Item, error)
	ListUpdatedSince(ctx context.Context, t dao.Tables, since time.Time) ([]dao.Item, error)
	Insert(ctx context.Context, t dao.Tables, item dao.Item) (dao.Item, error)
	UpdatePrice(ctx context.Context, t dao.Tables, id uint, price float64) (dao.Item, error)
	Delete(ctx context.Context, t dao.Tables, id uint) error
	ListHistory(ctx context.Context, t dao.Tables, itemID uint) ([]dao.PriceHistory, error)
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

func (r *ItemRepository) tables(cat domain.Category) dao.Tables {
	return dao.Tables{
		Items:   cat.ItemTable,
		History: cat.HistoryTable,
	}
}

func (r *ItemRepository) daoToDomain(item dao.Item) domain.Item {
	return domain.Item{
		ID:        item.ID,
		Name:      item.Name,
		Price:     item.Price,
		UpdatedAt: item.UpdatedAt,
	}
}

func (r *ItemRepository) daosToDomain(items []dao.Item) []domain.Item {
	converted := make([]domain.Item, len(items))
	for i, item := range items {
		converted[i] = r.daoToDomain(item)
	}

	return converted
}

func (r *ItemRepository) historyDAOToDomain(record dao.PriceHistory) domain.PriceHistoryRecord {
	return domain.PriceHistoryRecord{
		ID:        record.ID,
		ItemID:    record.ItemID,
		Price:     record.Price,
		UpdatedAt: record.UpdatedAt,
	}
}

func (r *ItemRepository) ListAll(ctx context.Context, cat domain.Category) ([]domain.Item, error) {
	items, err := r.dao.ListAll(ctx, r.tables(cat))
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListAll -> %w", err)
	}

	return r.daosToDomain(items), nil
}

func (r *ItemRepository) ListUpdatedSince(ctx context.Context, cat domain.Category, since time.Time) ([]domain.Item, error) {
	items, err := r.dao.ListUpdatedSince(ctx, r.tables(cat), since)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListUpdatedSince -> %w", err)
	}

	return r.daosToDomain(items), nil
}

func (r *ItemRepository) Create(ctx context.Context, cat domain.Category, item domain.Item) (domain.Item, error) {
	created, err := r.dao.Insert(ctx, r.tables(cat), dao.Item{
		Name:  item.Name,
		Price: item.Price,
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ItemRepository) UpdatePrice(ctx context.Context, cat domain.Category, id uint, price float64) (domain.Item, error) {
	updated, err := r.dao.UpdatePrice(ctx, r.tables(cat), id, price)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.UpdatePrice -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ItemRepository) Delete(ctx context.Context, cat domain.Category, id uint) error {
	if err := r.dao.Delete(ctx, r.tables(cat), id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ItemRepository) ListHistory(ctx context.Context, cat domain.Category, itemID uint) ([]domain.PriceHistoryRecord, error) {
	records, err := r.dao.ListHistory(ctx, r.tables(cat), itemID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListHistory -> %w", err)
	}

	converted := make([]domain.PriceHistoryRecord, len(records))
	for i, record := range records {
		converted[i] = r.historyDAOToDomain(record)
	}

	return converted, nil
}
