package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_MODE", "PORT", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASS", "DB_NAME", "DB_DSN",
		"JWT_SECRET", "JWT_EXPIRY_HOURS", "ADMIN_EMAIL", "ADMIN_PASSWORD", "ALLOWED_ORIGINS",
		"PUBLIC_APP_URL", "REQUEST_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_DevDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDev())
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, devJWTSecret, cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry())
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "*", cfg.AllowedOrigins)
	assert.Equal(t, "admin@lifeline.local", cfg.Admin.Email)
	assert.NotEmpty(t, cfg.Admin.Password)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("JWT_EXPIRY_HOURS", "72")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "nope")
	t.Setenv("ADMIN_EMAIL", "  Ops@Example.org ")
	t.Setenv("PUBLIC_APP_URL", "https://donate.example.org/")
	t.Setenv("RECONCILE_SCHEDULE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 72*time.Hour, cfg.JWT.Expiry())
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "ops@example.org", cfg.Admin.Email)
	assert.Equal(t, "https://donate.example.org", cfg.PublicAppURL)
	assert.Empty(t, cfg.ReconcileSchedule)
}

func TestLoad_InvalidMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_MODE", "staging")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "mongo")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProdRequiresSecrets(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_MODE", "prod")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "prod-secret")
	_, err = Load()
	assert.ErrorContains(t, err, "ADMIN_PASSWORD")

	t.Setenv("ADMIN_PASSWORD", "a-long-password")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://www.lifelinebloodcenter.org", cfg.AllowedOrigins)

	t.Setenv("DB_DRIVER", "memory")
	_, err = Load()
	assert.ErrorContains(t, err, "memory")

	t.Setenv("APP_MODE", "dev")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Database.Driver)
}

func TestBuildDSN(t *testing.T) {
	mysqlDSN := buildDSN(DatabaseConfig{Driver: "mysql", User: "u", Password: "p", Host: "h", Port: "3306", DBName: "db"})
	assert.Equal(t, "u:p@tcp(h:3306)/db?charset=utf8mb4&parseTime=True&loc=UTC", mysqlDSN)

	pgDSN := buildDSN(DatabaseConfig{Driver: "postgres", User: "u", Password: "p", Host: "h", Port: "5432", DBName: "db"})
	assert.Equal(t, "host=h user=u password=p dbname=db port=5432 sslmode=disable TimeZone=UTC", pgDSN)

	assert.Equal(t, "custom", buildDSN(DatabaseConfig{Driver: "mysql", DSN: "custom"}))
}
