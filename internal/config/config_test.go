package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaultsAndEnv(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[auth]
jwt_secret = "from-file"
`)
	t.Setenv("SALON_JWT_SECRET", "from-env")
	t.Setenv("SALON_REDIS_ADDR", "redis:6380")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
	assert.Equal(t, StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, "admin@eleela.com", cfg.Seed.AdminEmail)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing jwt secret",
			body: "[server]\nhttp_port = 8080\n",
		},
		{
			name: "unknown storage driver",
			body: "[auth]\njwt_secret = \"s\"\n[storage]\ndriver = \"mongo\"\n",
		},
		{
			name: "unknown cart driver",
			body: "[auth]\njwt_secret = \"s\"\n[cart]\ndriver = \"memcached\"\n",
		},
		{
			name: "non-positive port",
			body: "[auth]\njwt_secret = \"s\"\n[server]\nhttp_port = 0\n",
		},
		{
			name: "salon closes before it opens",
			body: "[auth]\njwt_secret = \"s\"\n[schedule]\nopen_time = \"19:00\"\nclose_time = \"08:00\"\n",
		},
		{
			name: "zero slot step",
			body: "[auth]\njwt_secret = \"s\"\n[schedule]\nslot_step_minutes = 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SALON_JWT_SECRET", "")
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "salon", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=salon sslmode=disable", db.DSN())
}
