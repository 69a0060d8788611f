package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", config.App.Port)
	assert.Equal(t, 30*time.Minute, config.JWT.Expiry)
	assert.Equal(t, "moviehub", config.JWT.Issuer)
	assert.Equal(t, []string{"*"}, config.CORS.AllowedOrigins)
	assert.True(t, config.Database.AutoMigrate)
	assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=moviehub sslmode=disable", config.Database.DSN())
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY_MINUTES", "5")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, 5*time.Minute, config.JWT.Expiry)
	assert.Equal(t, "6543", config.Database.Port)
	assert.EqualValues(t, 4, config.Database.MaxConns)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.CORS.AllowedOrigins)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY_MINUTES", "0")
	_, err = LoadConfig()
	assert.Error(t, err)
}
