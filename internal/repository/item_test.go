package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fishstall-api/internal/domain"
	"fishstall-api/internal/repository/dao"
)

type MockItemDAO struct {
	mock.Mock
}

func (m *MockItemDAO) ListAll(ctx context.Context, t dao.Tables) ([]dao.Item, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dao.Item), args.Error(1)
}

func (m *MockItemDAO) ListUpdatedSince(ctx context.Context, t dao.Tables, since time.Time) ([]dao.Item, error) {
	args := m.Called(ctx, t, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dao.Item), args.Error(1)
}

func (m *MockItemDAO) Insert(ctx context.Context, t dao.Tables, item dao.Item) (dao.Item, error) {
	args := m.Called(ctx, t, item)
	return args.Get(0).(dao.Item), args.Error(1)
}

func (m *MockItemDAO) UpdatePrice(ctx context.Context, t dao.Tables, id uint, price float64) (dao.Item, error) {
	args := m.Called(ctx, t, id, price)
	return args.Get(0).(dao.Item), args.Error(1)
}

func (m *MockItemDAO) Delete(ctx context.Context, t dao.Tables, id uint) error {
	args := m.Called(ctx, t, id)
	return args.Error(0)
}

func (m *MockItemDAO) ListHistory(ctx context.Context, t dao.Tables, itemID uint) ([]dao.PriceHistory, error) {
	args := m.Called(ctx, t, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dao.PriceHistory), args.Error(1)
}

// Each category must be routed to its own pair of physical tables.
func TestItemRepository_TableRouting(t *testing.T) {
	tests := []struct {
		name       string
		cat        domain.Category
		wantTables dao.Tables
	}{
		{
			name:       "fishes",
			cat:        domain.CategoryFishes,
			wantTables: dao.Tables{Items: "fishes", History: "fish_price_history"},
		},
		{
			name:       "kerala items",
			cat:        domain.CategoryKeralaItems,
			wantTables: dao.Tables{Items: "kerala_items", History: "kerala_item_price_history"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itemDAO := new(MockItemDAO)
			itemDAO.On("ListAll", mock.Anything, tt.wantTables).Return([]dao.Item{}, nil)

			repo := NewItemRepository(itemDAO)
			_, err := repo.ListAll(context.Background(), tt.cat)

			require.NoError(t, err)
			itemDAO.AssertExpectations(t)
		})
	}
}

func TestItemRepository_Create(t *testing.T) {
	itemDAO := new(MockItemDAO)

	now := time.Now()
	itemDAO.On("Insert", mock.Anything, mock.Anything, dao.Item{Name: "Pomfret", Price: 450}).
		Return(dao.Item{ID: 1, Name: "Pomfret", Price: 450, UpdatedAt: now}, nil)

	repo := NewItemRepository(itemDAO)
	created, err := repo.Create(context.Background(), domain.CategoryFishes, domain.Item{Name: "Pomfret", Price: 450})

	require.NoError(t, err)
	assert.Equal(t, domain.Item{ID: 1, Name: "Pomfret", Price: 450, UpdatedAt: now}, created)
	itemDAO.AssertExpectations(t)
}

func TestItemRepository_Create_IgnoresClientAssignedFields(t *testing.T) {
	itemDAO := new(MockItemDAO)

	// id and updated_at are store-assigned; whatever the caller sets must
	// not reach the DAO.
	itemDAO.On("Insert", mock.Anything, mock.Anything, dao.Item{Name: "Sardine", Price: 90}).
		Return(dao.Item{ID: 2, Name: "Sardine", Price: 90, UpdatedAt: time.Now()}, nil)

	repo := NewItemRepository(itemDAO)
	_, err := repo.Create(context.Background(), domain.CategoryFishes, domain.Item{
		ID:        777,
		Name:      "Sardine",
		Price:     90,
		UpdatedAt: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	itemDAO.AssertExpectations(t)
}

func TestItemRepository_UpdatePrice_NotFound(t *testing.T) {
	itemDAO := new(MockItemDAO)
	itemDAO.On("UpdatePrice", mock.Anything, mock.Anything, uint(99), 500.0).
		Return(dao.Item{}, dao.ErrItemNotFound)

	repo := NewItemRepository(itemDAO)
	_, err := repo.UpdatePrice(context.Background(), domain.CategoryFishes, 99, 500)

	assert.ErrorIs(t, err, ErrItemNotFound)
	itemDAO.AssertExpectations(t)
}

func TestItemRepository_ListHistory(t *testing.T) {
	itemDAO := new(MockItemDAO)

	t1 := time.Now().Add(-time.Hour)
	t2 := time.Now()
	itemDAO.On("ListHistory", mock.Anything, mock.Anything, uint(3)).Return([]dao.PriceHistory{
		{ID: 1, ItemID: 3, Price: 450, UpdatedAt: t1},
		{ID: 2, ItemID: 3, Price: 500, UpdatedAt: t2},
	}, nil)

	repo := NewItemRepository(itemDAO)
	records, err := repo.ListHistory(context.Background(), domain.CategoryFishes, 3)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.PriceHistoryRecord{ID: 1, ItemID: 3, Price: 450, UpdatedAt: t1}, records[0])
	assert.Equal(t, domain.PriceHistoryRecord{ID: 2, ItemID: 3, Price: 500, UpdatedAt: t2}, records[1])
	itemDAO.AssertExpectations(t)
}
