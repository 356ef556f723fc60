package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ERROR_MODE", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("CHECKOUT_DELAY", "")
	t.Setenv("CATALOG_SEED", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load("8081")
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, ModeLenient, cfg.ErrorMode)
	assert.False(t, cfg.Postgres.Configured())
	assert.False(t, cfg.Redis.Configured())
	assert.Equal(t, 2*time.Second, cfg.Checkout.Delay)
	assert.Equal(t, int64(42), cfg.Catalog.Seed)
}

func TestLoad_StrictModeAndOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ERROR_MODE", "STRICT")
	t.Setenv("CHECKOUT_DELAY", "150ms")
	t.Setenv("CATALOG_SEED", "7")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PORT", "")

	cfg, err := Load("8082")
	require.NoError(t, err)

	assert.True(t, cfg.ErrorMode.Strict())
	assert.Equal(t, 150*time.Millisecond, cfg.Checkout.Delay)
	assert.Equal(t, int64(7), cfg.Catalog.Seed)
	assert.True(t, cfg.Postgres.Configured())
	assert.Contains(t, cfg.Postgres.DSN(), "host=db")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{Port: "8080", LogLevel: "info", ErrorMode: ModeLenient},
		},
		{
			name:    "missing port",
			cfg:     Config{LogLevel: "info", ErrorMode: ModeLenient},
			wantErr: true,
		},
		{
			name:    "unknown error mode",
			cfg:     Config{Port: "8080", LogLevel: "info", ErrorMode: "yolo"},
			wantErr: true,
		},
		{
			name:    "unknown log level",
			cfg:     Config{Port: "8080", LogLevel: "verbose", ErrorMode: ModeStrict},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := testCase.cfg.Validate()
			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostgresDSN_PrefersURL(t *testing.T) {
	p := PostgresConfig{URL: "postgres://u:p@h/db", Host: "ignored"}
	assert.Equal(t, "postgres://u:p@h/db", p.DSN())
}
