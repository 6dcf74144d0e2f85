package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mexicoindia/membership-backend/internal/config"
	"github.com/mexicoindia/membership-backend/internal/database"
	"github.com/mexicoindia/membership-backend/internal/mailer"
	"github.com/mexicoindia/membership-backend/internal/routes"
	"github.com/mexicoindia/membership-backend/internal/store"
	"github.com/mexicoindia/membership-backend/internal/utils"
	"github.com/mexicoindia/membership-backend/internal/ws"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	log.Info().Str("db", cfg.MongoDB).Msg("mongo connected")

	sender, err := mailer.NewSender(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("mail transport init failed")
	}
	notifier := mailer.NewNotifier(sender, cfg)

	adminPasswordHash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("admin password hash failed")
	}

	feed := ws.NewFeedHub()
	go feed.Run()

	r := gin.Default()
	routes.Register(r, store.NewMongoMembershipStore(db), notifier, feed, adminPasswordHash, cfg)

	log.Info().Str("port", cfg.Port).Str("mail_provider", cfg.MailProvider).Msg("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
