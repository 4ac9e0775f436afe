package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("ALLOWED_ORIGIN", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "meetup", cfg.DBName)
	assert.Equal(t, "*", cfg.AllowedOrigin)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_NAME", "catalog")
	t.Setenv("ALLOWED_ORIGIN", "https://meetup.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "catalog", cfg.DBName)
	assert.Equal(t, "https://meetup.example.com", cfg.AllowedOrigin)
}

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")

	_, err := Load()
	assert.Error(t, err)
}
