package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fishstall-api/internal/config"
	"fishstall-api/internal/domain"
	"fishstall-api/internal/repository/dao"
)

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%v port=%v user=%v password=%v dbname=%v sslmode=disable",
		conf.Host, conf.Port, conf.User, conf.Password, conf.DBName,
	)

	return open(dsn)
}

// OpenPostgresWithURL connects with a full connection string, the form
// hosting platforms hand out via DATABASE_URL.
func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	return open(url)
}

func open(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	sets := make([]dao.Tables, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		sets = append(sets, dao.Tables{Items: c.ItemTable, History: c.HistoryTable})
	}

	if err = dao.InitTables(gormDB, sets...); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return gormDB, nil
}
