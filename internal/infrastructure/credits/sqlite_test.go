package credits

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomlens/backend/internal/domain"
)

func openTestLedger(t *testing.T, initialBalance int) *SQLiteLedger {
	t.Helper()

	ledger, err := OpenSQLite(filepath.Join(t.TempDir(), "credits.db"), initialBalance)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ledger.Close() })
	return ledger
}

func TestSQLiteLedgerGet(t *testing.T) {
	ledger := openTestLedger(t, 3)
	ctx := context.Background()

	balance, err := ledger.Get(ctx, "new-user")
	require.NoError(t, err)
	assert.Equal(t, 3, balance)
}

func TestSQLiteLedgerDecrement(t *testing.T) {
	ledger := openTestLedger(t, 2)
	ctx := context.Background()

	require.NoError(t, ledger.Decrement(ctx, "u1"))
	require.NoError(t, ledger.Decrement(ctx, "u1"))

	balance, err := ledger.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, balance)

	err = ledger.Decrement(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrNoCredits)
}

func TestSQLiteLedgerGrant(t *testing.T) {
	ledger := openTestLedger(t, 1)
	ctx := context.Background()

	require.NoError(t, ledger.Grant(ctx, "u1", 4))

	balance, err := ledger.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, balance)

	err = ledger.Grant(ctx, "u1", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSQLiteLedgerPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credits.db")
	ctx := context.Background()

	ledger, err := OpenSQLite(path, 3)
	require.NoError(t, err)
	require.NoError(t, ledger.Decrement(ctx, "u1"))
	require.NoError(t, ledger.Close())

	reopened, err := OpenSQLite(path, 3)
	require.NoError(t, err)
	defer reopened.Close()

	balance, err := reopened.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, balance)
}
