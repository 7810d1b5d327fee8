package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/ItemDrop_Go/internal/database"
	"github.com/osse101/ItemDrop_Go/internal/domain"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		terminate = setupDatabase(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

// setupDatabase starts a Postgres container, migrates it and opens testPool.
// testPool stays nil when Docker is unavailable.
func setupDatabase(ctx context.Context) func() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return func() {}
	}
	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return terminate
	}

	pool, err := database.NewPool(connStr, 25, 30*time.Minute, time.Hour)
	if err != nil {
		fmt.Printf("WARNING: Failed to connect to database: %v\n", err)
		return terminate
	}

	if err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to apply migrations: %v\n", err)
		pool.Close()
		return terminate
	}

	testPool = pool
	return func() {
		pool.Close()
		terminate()
	}
}

// requireDB skips integration tests when no database is running and
// otherwise empties every table
func requireDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}

	_, err := testPool.Exec(context.Background(),
		`TRUNCATE equips, items, item_lists, inventories, character_infos, characters, accounts RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return testPool
}

// seedAccount creates an account directly through the repository
func seedAccount(t *testing.T, pool *pgxpool.Pool, userID string) *domain.Account {
	t.Helper()
	acc, err := NewAccountRepository(pool).CreateAccount(context.Background(), userID, "hash", false)
	require.NoError(t, err)
	return acc
}

// seedTemplate inserts a catalog entry
func seedTemplate(t *testing.T, pool *pgxpool.Pool, name string, price int) domain.ItemTemplate {
	t.Helper()
	created, err := NewCatalogRepository(pool).CreateTemplate(context.Background(), domain.ItemTemplate{
		Name:       name,
		Type:       domain.ItemTypeWeapon,
		Rarity:     domain.RarityRare,
		ItemLevel:  3,
		Price:      price,
		Equippable: true,
	})
	require.NoError(t, err)
	return *created
}

// setGold overwrites an inventory balance
func setGold(t *testing.T, pool *pgxpool.Pool, inventoryID int64, gold int) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `UPDATE inventories SET gold = $1 WHERE id = $2`, gold, inventoryID)
	require.NoError(t, err)
}

// equipWeapon puts itemID into the weapon slot of the inventory's equip record
func equipWeapon(t *testing.T, pool *pgxpool.Pool, inventoryID, itemID int64) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO equips (inventory_id, weapon_slot_id) VALUES ($1, $2)
		 ON CONFLICT (inventory_id) DO UPDATE SET weapon_slot_id = EXCLUDED.weapon_slot_id`,
		inventoryID, itemID)
	require.NoError(t, err)
}

// inventoryState reads the stored balance and item count of an inventory
func inventoryState(t *testing.T, pool *pgxpool.Pool, inventoryID int64) (gold, items int) {
	t.Helper()
	err := pool.QueryRow(context.Background(),
		`SELECT i.gold, (SELECT count(*) FROM items WHERE inventory_id = i.id) FROM inventories i WHERE i.id = $1`,
		inventoryID).Scan(&gold, &items)
	require.NoError(t, err)
	return gold, items
}
