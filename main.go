package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Danik911/dublin-accommodation-bot/config"
	"github.com/Danik911/dublin-accommodation-bot/models"
	"github.com/Danik911/dublin-accommodation-bot/notify"
	"github.com/Danik911/dublin-accommodation-bot/services"
	"github.com/Danik911/dublin-accommodation-bot/storage"
	"github.com/Danik911/dublin-accommodation-bot/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Verbose)

	logger.Info("=== Dublin Accommodation Bot starting ===")
	logger.Info("Config — radius: %.0fkm | price: €%d-€%d | max listings: %d | max messages: %d",
		cfg.RadiusKm, cfg.MinPrice, cfg.MaxPrice, cfg.MaxListings, cfg.MaxMessages)

	persona, err := config.LoadPersona(cfg.PersonaPath)
	if err != nil {
		logger.Error("Failed to load persona profile: %v", err)
		os.Exit(1)
	}

	pipeline := services.NewPipeline(cfg, persona, logger)
	result, err := pipeline.Run(context.Background())
	if err != nil {
		logger.Error("Run failed: %v", err)
		os.Exit(1)
	}

	jsonWriter, err := storage.NewJSONWriter(cfg.DataDir)
	if err != nil {
		logger.Error("Failed to create JSON writer: %v", err)
		os.Exit(1)
	}
	if err := jsonWriter.Write(result); err != nil {
		logger.Error("JSON write failed: %v", err)
	} else {
		logger.Info("Results saved to %s", jsonWriter.LastPath)
	}

	if cfg.PostgresEnabled() {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN())
		if err != nil {
			logger.Error("PostgreSQL connection failed: %v", err)
		} else {
			defer pgWriter.Close()
			if err := pgWriter.Write(result); err != nil {
				logger.Error("PostgreSQL write failed: %v", err)
			} else {
				logger.Info("Listings and messages stored in PostgreSQL")
			}
		}
	}

	if cfg.TelegramEnabled() {
		notifier, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID, logger)
		if err != nil {
			logger.Warn("Telegram notifier unavailable: %v", err)
		} else {
			notifier.NotifyRun(result)
		}
	}

	printSummary(result)
}

func printSummary(result *models.RunResult) {
	fmt.Println("\n  SEARCH SUMMARY")
	fmt.Println("  ==============")
	fmt.Printf("  Listings found      : %d\n", result.Summary.TotalListings)
	fmt.Printf("  Messages generated  : %d\n", result.Summary.MessagesGenerated)
	fmt.Printf("  Free accommodation  : %d\n", result.Summary.FreeAccommodationFound)
	for msgType, count := range result.Summary.MessagesByType {
		fmt.Printf("    %-18s: %d\n", msgType, count)
	}

	if len(result.Listings) > 0 {
		fmt.Println("\n  SAMPLE LISTINGS")
		for i, l := range result.Listings {
			if i >= 3 {
				break
			}
			price := "Not specified"
			if l.Price != nil {
				price = fmt.Sprintf("€%.0f", *l.Price)
			}
			fmt.Printf("  %d. %s (%s, %s)\n", i+1, l.Title, price, l.Location)
		}
	}
	fmt.Println()
}
