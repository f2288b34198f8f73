package dao

import "gorm.io/gorm"

// Tables names the physical tables backing one category. Every DAO call is
// parameterized with it, so both category pipelines run through one code path.
type Tables struct {
	Items   string
	History string
}

func InitTables(db *gorm.DB, sets ...Tables) error {
	for _, t := range sets {
		if err := db.Table(t.Items).AutoMigrate(&Item{}); err != nil {
			return err
		}
		if err := db.Table(t.History).AutoMigrate(&PriceHistory{}); err != nil {
			return err
		}
	}

	return nil
}
