package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jladao109/wedding-rsvp-api/internal/application"
	"github.com/jladao109/wedding-rsvp-api/internal/config"
	"github.com/jladao109/wedding-rsvp-api/internal/email"
	"github.com/jladao109/wedding-rsvp-api/internal/infrastructure/repository"
	handlers "github.com/jladao109/wedding-rsvp-api/internal/interfaces/http"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	ctx := context.Background()

	// Roster store
	rosterStore, err := repository.NewSheetsRosterStore(ctx, []byte(cfg.GoogleCredentials), cfg.SpreadsheetID, cfg.SheetTab)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to roster sheet")
	}

	// Cutoff gate
	gate := application.NewCutoffGate(cfg.CutoffUTC)

	// Email backend: Resend when configured, SMTP as fallback, neither
	// means confirmations are skipped.
	var backend email.Notifier
	switch {
	case cfg.ResendAPIKey != "" && cfg.ResendFrom != "":
		backend = email.NewResendClient(cfg.ResendAPIKey, cfg.ResendFrom)
	case cfg.SMTPHost != "" && cfg.SMTPFromEmail != "":
		smtpClient, err := email.NewSMTPClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			log.Warn().Err(err).Msg("email client initialization failed, confirmations disabled")
		} else {
			backend = smtpClient
		}
	}
	dispatcher := email.NewDispatcher(backend)

	notice := application.ConfirmationCopy{
		Subject: fmt.Sprintf("%s Wedding Confirmation", cfg.CoupleNames),
		Text: fmt.Sprintf(
			"Thank you! We received your response. If you need to make any changes, "+
				"you have until %s to do so. You can update your RSVP directly on the "+
				"official website (%s).",
			cfg.CutoffDisplay, cfg.SiteURL,
		),
	}

	// Services and handlers
	lookupService := application.NewLookupService(rosterStore, gate)
	submissionService := application.NewSubmissionService(rosterStore, gate, dispatcher, cfg.SheetTab, notice)
	rsvpHandler := handlers.NewRSVPHandler(lookupService, submissionService)

	app := fiber.New()

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	api := app.Group("/api")

	rsvp := api.Group("/rsvp")
	rsvp.Get("/health", rsvpHandler.Health)
	rsvp.Post("/validate", rsvpHandler.Validate)
	rsvp.Post("/submit", rsvpHandler.Submit)

	log.Info().Str("port", cfg.ServerPort).Time("cutoff", cfg.CutoffUTC).Msg("server starting")
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
