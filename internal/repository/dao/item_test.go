package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = Tables{Items: "fishes", History: "fish_price_history"}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "docker is required for DAO tests")
	require.NoError(t, pool.Client.Ping())

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=fishstall_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})

	var db *gorm.DB
	err = pool.Retry(func() error {
		dsn := fmt.Sprintf(
			"host=localhost port=%v user=postgres password=secret dbname=fishstall_test sslmode=disable",
			resource.GetPort("5432/tcp"),
		)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)

	require.NoError(t, InitTables(db, testTables, Tables{Items: "kerala_items", History: "kerala_item_price_history"}))

	return db
}

func TestItemDAO_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DAO integration test in short mode")
	}

	db := openTestDB(t)
	d := NewItemDAO(db)
	ctx := context.Background()

	t.Run("insert assigns id and writes the first history row", func(t *testing.T) {
		before := time.Now()

		created, err := d.Insert(ctx, testTables, Item{Name: "Pomfret", Price: 450})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, 450.0, created.Price)
		assert.False(t, created.UpdatedAt.Before(before.Truncate(time.Second)))

		history, err := d.ListHistory(ctx, testTables, created.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, 450.0, history[0].Price)
		assert.WithinDuration(t, created.UpdatedAt, history[0].UpdatedAt, time.Second)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		_, err := d.Insert(ctx, testTables, Item{Name: "Pomfret", Price: 999})
		assert.ErrorIs(t, err, ErrItemNameExists)

		items, err := d.ListAll(ctx, testTables)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("list is sorted by name ascending", func(t *testing.T) {
		_, err := d.Insert(ctx, testTables, Item{Name: "Mackerel", Price: 240})
		require.NoError(t, err)
		_, err = d.Insert(ctx, testTables, Item{Name: "Sardine", Price: 90})
		require.NoError(t, err)

		items, err := d.ListAll(ctx, testTables)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Mackerel", items[0].Name)
		assert.Equal(t, "Pomfret", items[1].Name)
		assert.Equal(t, "Sardine", items[2].Name)
	})

	t.Run("update price refreshes updated_at and appends history", func(t *testing.T) {
		items, err := d.ListAll(ctx, testTables)
		require.NoError(t, err)

		var pomfret Item
		for _, item := range items {
			if item.Name == "Pomfret" {
				pomfret = item
			}
		}
		require.NotZero(t, pomfret.ID)

		updated, err := d.UpdatePrice(ctx, testTables, pomfret.ID, 500)
		require.NoError(t, err)
		assert.Equal(t, 500.0, updated.Price)
		assert.False(t, updated.UpdatedAt.Before(pomfret.UpdatedAt))

		history, err := d.ListHistory(ctx, testTables, pomfret.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, 450.0, history[0].Price)
		assert.Equal(t, 500.0, history[1].Price)
		assert.False(t, history[1].UpdatedAt.Before(history[0].UpdatedAt))
	})

	t.Run("update on a missing id reports not found and writes nothing", func(t *testing.T) {
		_, err := d.UpdatePrice(ctx, testTables, 9999, 500)
		assert.ErrorIs(t, err, ErrItemNotFound)

		history, err := d.ListHistory(ctx, testTables, 9999)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("list updated since", func(t *testing.T) {
		startOfDay := time.Now().Add(-time.Hour)
		items, err := d.ListUpdatedSince(ctx, testTables, startOfDay)
		require.NoError(t, err)
		assert.Len(t, items, 3)

		future := time.Now().Add(time.Hour)
		items, err = d.ListUpdatedSince(ctx, testTables, future)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("delete is idempotent and keeps history", func(t *testing.T) {
		items, err := d.ListAll(ctx, testTables)
		require.NoError(t, err)

		var pomfret Item
		for _, item := range items {
			if item.Name == "Pomfret" {
				pomfret = item
			}
		}
		require.NotZero(t, pomfret.ID)

		require.NoError(t, d.Delete(ctx, testTables, pomfret.ID))

		items, err = d.ListAll(ctx, testTables)
		require.NoError(t, err)
		for _, item := range items {
			assert.NotEqual(t, pomfret.ID, item.ID)
		}

		// Orphaned history rows stay behind.
		history, err := d.ListHistory(ctx, testTables, pomfret.ID)
		require.NoError(t, err)
		assert.Len(t, history, 2)

		// Second delete of the same id still succeeds.
		require.NoError(t, d.Delete(ctx, testTables, pomfret.ID))
	})

	t.Run("categories are isolated", func(t *testing.T) {
		keralaTables := Tables{Items: "kerala_items", History: "kerala_item_price_history"}

		_, err := d.Insert(ctx, keralaTables, Item{Name: "Banana Chips", Price: 120})
		require.NoError(t, err)

		keralaItems, err := d.ListAll(ctx, keralaTables)
		require.NoError(t, err)
		assert.Len(t, keralaItems, 1)

		fishItems, err := d.ListAll(ctx, testTables)
		require.NoError(t, err)
		for _, item := range fishItems {
			assert.NotEqual(t, "Banana Chips", item.Name)
		}
	})
}
