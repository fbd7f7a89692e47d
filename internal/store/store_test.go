package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	_ "modernc.org/sqlite"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBalanceRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, ok, err := db.LoadBalance(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "fresh database has no balance")

	require.NoError(t, db.SaveBalance(ctx, 140))
	require.NoError(t, db.SaveBalance(ctx, 95))

	balance, ok, err := db.LoadBalance(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 95, balance)

	require.NoError(t, db.ClearBalance(ctx))
	_, ok, err = db.LoadBalance(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBalancePersistsOnDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "lounge.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.SaveBalance(ctx, 0))
	require.NoError(t, db.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	balance, ok, err := reopened.LoadBalance(ctx)
	require.NoError(t, err)
	assert.True(t, ok, "a zero balance is still a stored balance")
	assert.Equal(t, 0, balance)
	assert.Equal(t, path, reopened.Path())
}

func TestRecordAndQueryResults(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	first, err := db.RecordResult(ctx, Result{Game: "rps", Outcome: "win", CreatedAt: base})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = db.RecordResult(ctx, Result{Game: "blackjack", Outcome: "push", Detail: "19 vs 19", Wager: 10, CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)
	_, err = db.RecordResult(ctx, Result{Game: "rps", Outcome: "lose", CreatedAt: base.Add(2 * time.Minute)})
	require.NoError(t, err)

	all, err := db.RecentResults(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "lose", all[0].Outcome, "newest first")
	assert.Equal(t, 10, all[1].Wager)
	assert.Equal(t, "19 vs 19", all[1].Detail)

	rps, err := db.RecentResults(ctx, "rps", 1)
	require.NoError(t, err)
	require.Len(t, rps, 1)
	assert.Equal(t, "lose", rps[0].Outcome)

	summary, err := db.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, []OutcomeCount{
		{Game: "blackjack", Outcome: "push", Count: 1},
		{Game: "rps", Outcome: "lose", Count: 1},
		{Game: "rps", Outcome: "win", Count: 1},
	}, summary)
}

func TestMigrationAddsWagerColumn(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "old.db")

	// Simulate a database created before the wager column existed.
	raw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = raw.Exec(`CREATE TABLE results (
		id TEXT PRIMARY KEY,
		game TEXT NOT NULL,
		outcome TEXT NOT NULL,
		detail TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	)`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	exists, err := db.columnExists(ctx, "results", "wager")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = db.RecordResult(ctx, Result{Game: "blackjack", Outcome: "win", Wager: 5})
	require.NoError(t, err)
}
