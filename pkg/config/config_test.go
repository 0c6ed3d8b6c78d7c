package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{
		"http://localhost:5173",
		"http://localhost:3000",
	}, cfg.Server.CORSOrigins)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PG_HOST", "db.internal")
	t.Setenv("PG_PORT", "5433")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{
		"https://app.example.com",
		"https://staging.example.com",
	}, cfg.Server.CORSOrigins)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "postgres",
		Password: "secret", Name: "taskodos_dev", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost user=postgres password=secret dbname=taskodos_dev port=5432 sslmode=disable",
		d.DSN())
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", s.Addr())
}
