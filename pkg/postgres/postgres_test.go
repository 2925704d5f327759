package postgres

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"
	"trading-signal-api/config"
	"trading-signal-api/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silentListener accepts TCP connections and never answers the startup message.
func silentListener(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var mu sync.Mutex
	var conns []net.Conn
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()

	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, conn := range conns {
			_ = conn.Close()
		}
	})
	return ln.Addr().String()
}

func TestNewDB_NoDSN(t *testing.T) {
	db, err := NewDB(context.Background(), config.Database{}, logger.NewNop())

	assert.ErrorIs(t, err, ErrNoDSN)
	assert.Nil(t, db)
}

func TestNewDB_InvalidConnMaxLifetime(t *testing.T) {
	cfg := config.Database{
		URL:             "postgres://u:p@127.0.0.1:1/db?sslmode=disable",
		ConnMaxLifetime: "forever",
	}

	db, err := NewDB(context.Background(), cfg, logger.NewNop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid connection max lifetime format 'forever'")
	assert.Nil(t, db)
}

func TestNewDB_ConnectionRefused(t *testing.T) {
	cfg := config.Database{URL: "postgres://u:p@127.0.0.1:1/db?sslmode=disable"}

	db, err := NewDB(context.Background(), cfg, logger.NewNop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping PostgreSQL")
	assert.Nil(t, db)
}

func TestNewDB_UnresponsiveServerTimesOut(t *testing.T) {
	addr := silentListener(t)
	cfg := config.Database{
		URL:            fmt.Sprintf("postgres://u:p@%s/db?sslmode=disable", addr),
		ConnectTimeout: 200 * time.Millisecond,
	}

	start := time.Now()
	db, err := NewDB(context.Background(), cfg, logger.NewNop())

	require.Error(t, err)
	assert.Nil(t, db)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestDB_CloseNil(t *testing.T) {
	var db *DB
	assert.NoError(t, db.Close())
}
