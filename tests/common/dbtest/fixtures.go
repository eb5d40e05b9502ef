//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestMachine(t *testing.T, db DBLike, name, category string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(),
		"INSERT INTO machines (id, name, category, state, created_at, updated_at) VALUES ($1, $2, $3, 'available', $4, $4)",
		id, name, category, now)
	require.NoError(t, err)
	return id
}

// sets a machine state directly, bypassing the transition table
func SetMachineState(t *testing.T, db DBLike, machineID uuid.UUID, state string) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		"UPDATE machines SET state = $2, updated_at = now() WHERE id = $1", machineID, state)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

func CreateTestBooking(t *testing.T, db DBLike, machineID uuid.UUID, start, end time.Time, status string, priceCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, machine_id, customer, starts_at, ends_at, status, price_cents, created_at, updated_at)
		VALUES ($1, $2, 'fixture@example.com', $3, $4, $5, $6, $7, $7)`,
		id, machineID, start, end, status, priceCents, now)
	require.NoError(t, err)
	return id
}

func CreateTestSubscription(t *testing.T, db DBLike, ownerID, plan string, expiresAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(), `
		INSERT INTO subscriptions (id, owner_id, plan, membership_type, expires_at, renewed, created_at, updated_at)
		VALUES ($1, $2, $3, 'premium', $4, FALSE, $5, $5)`,
		id, ownerID, plan, expiresAt, now)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
