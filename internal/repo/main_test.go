package repo_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/jhavlik/pricebook/testutil"
)

// beginTestTx opens a transaction against the test database and rolls it
// back when the test finishes, giving free per-test isolation without any
// cleanup SQL.
//
// Requires TEST_DATABASE_URL to be set and all migrations to be applied
// against the test database before running these tests.
func beginTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return tx
}
