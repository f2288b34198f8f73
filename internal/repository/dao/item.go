package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrItemNameExists = errors.New("item already exists")
)

type Item struct {
	ID uint `gorm:"primaryKey"`

	Name  string  `gorm:"not null;unique"`
	Price float64 `gorm:"not null"`

	UpdatedAt time.Time `gorm:"not null"`
}

type PriceHistory struct {
	ID uint `gorm:"primaryKey"`

	ItemID uint    `gorm:"not null;index"`
	Price  float64 `gorm:"not null"`

	UpdatedAt time.Time `gorm:"not null"`
}

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

func (d *ItemDAO) ListAll(ctx context.Context, t Tables) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).
		Table(t.Items).
		Order("name ASC").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *ItemDAO) ListUpdatedSince(ctx context.Context, t Tables, since time.Time) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).
		Table(t.Items).
		Where("updated_at >= ?", since).
		Order("name ASC").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// Insert writes the item and its initial price-history row in one
// transaction, so an item can never exist without an audit trail.
func (d *ItemDAO) Insert(ctx context.Context, t Tables, item Item) (Item, error) {
	now := time.Now()
	item.UpdatedAt = now

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Table(t.Items).Create(&item); result.Error != nil {
			return result.Error
		}

		history := PriceHistory{
			ItemID:    item.ID,
			Price:     item.Price,
			UpdatedAt: now,
		}
		if result := tx.Table(t.History).Create(&history); result.Error != nil {
			return result.Error
		}

		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return Item{}, ErrItemNameExists
		}

		return Item{}, err
	}

	return item, nil
}

// UpdatePrice sets the new price and refreshes updated_at, appending the
// matching history row in the same transaction. Updating an id that does
// not exist returns ErrItemNotFound.
func (d *ItemDAO) UpdatePrice(ctx context.Context, t Tables, id uint, price float64) (Item, error) {
	var item Item
	now := time.Now()

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Table(t.Items).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"price":      price,
				"updated_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrItemNotFound
		}

		history := PriceHistory{
			ItemID:    id,
			Price:     price,
			UpdatedAt: now,
		}
		if result := tx.Table(t.History).Create(&history); result.Error != nil {
			return result.Error
		}

		return tx.Table(t.Items).Where("id = ?", id).Take(&item).Error
	})
	if err != nil {
		return Item{}, err
	}

	return item, nil
}

// Delete is idempotent: removing an absent id succeeds. History rows are
// left in place on purpose; the trail outlives the item.
func (d *ItemDAO) Delete(ctx context.Context, t Tables, id uint) error {
	result := d.db.WithContext(ctx).
		Table(t.Items).
		Where("id = ?", id).
		Delete(&Item{})

	return result.Error
}

func (d *ItemDAO) ListHistory(ctx context.Context, t Tables, itemID uint) ([]PriceHistory, error) {
	var records []PriceHistory

	result := d.db.WithContext(ctx).
		Table(t.History).
		Where("item_id = ?", itemID).
		Order("updated_at ASC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}
