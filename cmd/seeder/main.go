// Command seeder loads a YAML flashcard deck into the shared deck table.
// Questions already present are skipped, so reruns are safe.
//
// Flags:
//
//	--deck           path to the deck YAML file (overrides seeder config)
//	--dry-run        parse and validate the deck without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/pmp-study-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pmp-study-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/pmp-study-backend/internal/app"
	"github.com/heartmarshall/pmp-study-backend/internal/app/seeder"
	"github.com/heartmarshall/pmp-study-backend/internal/config"
)

var _ seeder.FlashcardBulkRepo = (*flashcard.Repo)(nil)

func main() {
	deckFlag := flag.String("deck", "", "path to the deck YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "validate the deck without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *deckFlag != "" {
		seederCfg.DeckPath = *deckFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if seederCfg.DeckPath == "" {
		logger.Error("no deck given: pass --deck or set SEEDER_DECK_PATH")
		os.Exit(1)
	}

	f, err := os.Open(seederCfg.DeckPath)
	if err != nil {
		logger.Error("open deck", slog.String("error", err.Error()))
		os.Exit(1)
	}
	deck, err := seeder.ParseDeck(f)
	f.Close()
	if err != nil {
		logger.Error("invalid deck", slog.String("path", seederCfg.DeckPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := seeder.New(logger, flashcard.New(pool), *seederCfg).Run(ctx, deck); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
