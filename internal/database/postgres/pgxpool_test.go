package postgres

import (
	"context"
	"testing"
	"time"

	"skillforge/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		DBHost:     " db ",
		DBPort:     "5432",
		DBUser:     "skillforge",
		DBPassword: "secret",
		DBName:     "skillforge",
		DBSSLMode:  "disable",
	})

	assert.Equal(t, "host=db port=5432 user=skillforge password=secret dbname=skillforge sslmode=disable", dsn)
}

func TestPoolConfig_Defaults(t *testing.T) {
	pcfg, err := poolConfig(config.DatabaseConfig{
		DBHost: "db", DBPort: "5432", DBUser: "skillforge", DBPassword: "secret", DBName: "skillforge", DBSSLMode: "disable",
	})
	require.NoError(t, err)

	assert.Equal(t, "skillforge", pcfg.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, 5*time.Second, pcfg.ConnConfig.ConnectTimeout)
	assert.Equal(t, int32(10), pcfg.MaxConns)
	assert.Equal(t, int32(1), pcfg.MinConns)
	assert.Equal(t, 5*time.Minute, pcfg.MaxConnIdleTime)
}

func TestPoolConfig_Overrides(t *testing.T) {
	pcfg, err := poolConfig(config.DatabaseConfig{
		DBHost: "db", DBPort: "5432", DBUser: "skillforge", DBPassword: "secret", DBName: "skillforge", DBSSLMode: "disable",
		ConnectTimeout:        2 * time.Second,
		PoolMaxConns:          4,
		PoolMinConns:          8,
		PoolMaxConnLifetime:   time.Hour,
		PoolHealthCheckPeriod: 30 * time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, pcfg.ConnConfig.ConnectTimeout)
	assert.Equal(t, int32(4), pcfg.MaxConns)
	assert.Equal(t, int32(4), pcfg.MinConns, "min is capped at max")
	assert.Equal(t, time.Hour, pcfg.MaxConnLifetime)
	assert.Equal(t, 30*time.Second, pcfg.HealthCheckPeriod)
}

func TestPool_NotConnected(t *testing.T) {
	var p *Pool
	ctx := context.Background()

	assert.ErrorIs(t, p.Ping(ctx), ErrNotConnected)
	_, err := p.Exec(ctx, "SELECT 1")
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.ErrorIs(t, p.QueryRow(ctx, "SELECT 1").Scan(), ErrNotConnected)
	assert.NoError(t, p.Close())
}
