package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/divanshu1993/babli-bua-wedding-assistant/internal/assistant"
	"github.com/divanshu1993/babli-bua-wedding-assistant/internal/cache"
	"github.com/divanshu1993/babli-bua-wedding-assistant/internal/config"
	"github.com/divanshu1993/babli-bua-wedding-assistant/internal/handler"
	"github.com/divanshu1993/babli-bua-wedding-assistant/internal/sheets"
)

func main() {
	// A missing .env is fine; real deployments configure the environment directly.
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Str("component", "main").Logger()

	cfg := config.LoadConfig()

	sheetsClient := sheets.NewClient(
		sheets.Sources{
			ScheduleURL: cfg.ScheduleSheetURL,
			HotelsURL:   cfg.HotelsSheetURL,
			GuestsURL:   cfg.GuestsSheetURL,
			MetaURL:     cfg.MetaSheetURL,
		},
		sheets.Defaults{
			CoupleNames: cfg.CoupleNames,
			WeddingName: cfg.WeddingName,
			City:        cfg.City,
		},
	)

	snapshots := cache.New(sheetsClient.BuildWeddingData)

	assistantService := assistant.NewService(&assistant.Config{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.OpenAIModel,
	})

	chatHandler := handler.NewChatHandler(snapshots, assistantService)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", chatHandler.HandleChat)
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Wedding assistant listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown error")
	}
}
