package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken         string
	ChannelUsername  string
	ModerationChatID int64
	ArchiveDir       string
	DBUser           string
	DBPassword       string
	DBName           string
	DBHost           string
	DBPort           string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Printf("config.Load: no .env file found - using env variables")
	}

	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		ChannelUsername: os.Getenv("CHANNEL_USERNAME"),
		ArchiveDir:      os.Getenv("ARCHIVE_DIR"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("config.Load: BOT_TOKEN is required")
	}

	if cfg.ChannelUsername == "" {
		return nil, fmt.Errorf("config.Load: CHANNEL_USERNAME is required")
	}

	rawChatID := os.Getenv("MODERATION_CHAT_ID")
	if rawChatID == "" {
		return nil, fmt.Errorf("config.Load: MODERATION_CHAT_ID is required")
	}

	cfg.ModerationChatID, err = strconv.ParseInt(rawChatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("config.Load: invalid MODERATION_CHAT_ID: %w", err)
	}

	if cfg.DBUser == "" || cfg.DBPassword == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("config.Load: DB_USER, DB_PASSWORD, DB_NAME are required")
	}

	if cfg.DBHost == "" {
		cfg.DBHost = "localhost"
	}

	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}

	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "photo_archive"
	}

	return cfg, nil
}
