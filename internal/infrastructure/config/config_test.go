package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedder.Model)
	assert.Equal(t, "datask_faq", cfg.Qdrant.Collection)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "datask init")
}

func TestLoad_MergesWithDefaults(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(base), 0755))

	content := `
llm:
  model: gpt-4o
storage:
  driver: mysql
  mysql:
    user: datask
    host: db.internal
    port: "3306"
    database: datask
`
	require.NoError(t, os.WriteFile(ConfigFilePath(base), []byte(content), 0644))

	cfg, err := Load(base)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	// Untouched sections keep their defaults.
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 6334, cfg.Qdrant.Port)
	assert.Equal(t, "mysql", cfg.Storage.Driver)
	assert.Equal(t, "db.internal", cfg.Storage.MySQL.Host)
	// The SQLite path still gets a default even when mysql is selected.
	assert.Equal(t, SQLitePath(base), cfg.Storage.SQLite.Path)
}

func TestLoad_InvalidYAML(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(base), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(base), []byte("llm: ["), 0644))

	_, err := Load(base)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, WriteDefault(base))

	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DATASK_DB_PASSWORD", "hunter2")
	t.Setenv("DATASK_PORT", "9090")

	cfg, err := Load(base)
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "sk-test", cfg.Embedder.APIKey)
	assert.Equal(t, "hunter2", cfg.Storage.MySQL.Password)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoad_FileKeyBeatsEnv(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(base), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(base), []byte("llm:\n  api_key: sk-file\n"), 0644))

	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg, err := Load(base)
	require.NoError(t, err)
	assert.Equal(t, "sk-file", cfg.LLM.APIKey)
}

func TestWriteDefault(t *testing.T) {
	base := t.TempDir()

	require.NoError(t, WriteDefault(base))
	assert.True(t, Exists(base))

	// A second call must not clobber an existing config.
	err := WriteDefault(base)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	cfg, err := Load(base)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
}

func TestWrite_RoundTrip(t *testing.T) {
	base := t.TempDir()

	cfg := Default()
	cfg.Qdrant.Collection = "faq_test"
	require.NoError(t, Write(base, cfg))

	loaded, err := Load(base)
	require.NoError(t, err)
	assert.Equal(t, "faq_test", loaded.Qdrant.Collection)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/srv/app", ".datask"), ConfigDir("/srv/app"))
	assert.Equal(t, filepath.Join("/srv/app", ".datask", "config.yaml"), ConfigFilePath("/srv/app"))
	assert.Equal(t, filepath.Join("/srv/app", ".datask", "datask.db"), SQLitePath("/srv/app"))
}
