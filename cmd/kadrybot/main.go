package main

import (
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/frameslife/kadry_bot/internal/bot"
	"github.com/frameslife/kadry_bot/internal/config"
	"github.com/frameslife/kadry_bot/internal/db"
	"github.com/frameslife/kadry_bot/internal/files"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot load config")
	}

	database, err := db.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}
	defer database.Close()

	if err := db.RunMigrations(database.Conn, "db_scripts/init.sql"); err != nil {
		logger.Fatal().Err(err).Msg("cannot run migrations")
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create telegram bot")
	}

	submissionRepo := db.NewSubmissionRepository(database.Conn)

	archive, err := files.NewPhotoArchive(botAPI, cfg.ArchiveDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create photo archive")
	}

	gate := bot.NewSubscriptionGate(botAPI, cfg.ChannelUsername, logger)

	botService := bot.New(
		botAPI,
		gate,
		bot.NewSessionStore(),
		submissionRepo,
		archive,
		cfg.ChannelUsername,
		cfg.ModerationChatID,
		logger,
	)

	logger.Info().Str("bot", botAPI.Self.UserName).Msg("bot started")

	botService.Start()
}
