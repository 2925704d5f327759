package cmd

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppDependency_DatabaseUnavailable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var mu sync.Mutex
	var held []net.Conn
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			held = append(held, conn)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, conn := range held {
			_ = conn.Close()
		}
	})

	tests := []struct {
		name        string
		databaseURL string
	}{
		{name: "not configured", databaseURL: ""},
		{name: "connection refused", databaseURL: "postgres://u:p@127.0.0.1:1/db?sslmode=disable"},
		{name: "server never answers", databaseURL: "postgres://u:p@" + ln.Addr().String() + "/db?sslmode=disable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", tt.databaseURL)
			t.Setenv("DATABASE_CONNECT_TIMEOUT", "200ms")

			start := time.Now()
			dep, err := newAppDependency(context.Background(), prometheus.NewRegistry())

			require.NoError(t, err)
			require.NotNil(t, dep)
			assert.Nil(t, dep.db)
			assert.Nil(t, dep.dbPinger())
			assert.NotNil(t, dep.echo)
			assert.Less(t, time.Since(start), 5*time.Second)
			assert.NoError(t, dep.Close())
		})
	}
}
