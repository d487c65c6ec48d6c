package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "token123")
	t.Setenv("CHANNEL_USERNAME", "@kadry_zhizni")
	t.Setenv("MODERATION_CHAT_ID", "-100500")
	t.Setenv("DB_USER", "bot")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "kadry")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("ARCHIVE_DIR", "approved")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token123", cfg.BotToken)
	assert.Equal(t, "@kadry_zhizni", cfg.ChannelUsername)
	assert.Equal(t, int64(-100500), cfg.ModerationChatID)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "6432", cfg.DBPort)
	assert.Equal(t, "approved", cfg.ArchiveDir)
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("ARCHIVE_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "photo_archive", cfg.ArchiveDir)
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"no bot token", "BOT_TOKEN"},
		{"no channel", "CHANNEL_USERNAME"},
		{"no moderation chat", "MODERATION_CHAT_ID"},
		{"no db user", "DB_USER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, "")

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadBadModerationChatID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MODERATION_CHAT_ID", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MODERATION_CHAT_ID")
}
