package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"padelyzer/internal/adapters/directory"
	"padelyzer/internal/adapters/observability"
	redisad "padelyzer/internal/adapters/redis"
	"padelyzer/internal/app"
	"padelyzer/internal/shared"
	mysqlrepo "padelyzer/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.DirectoryBase).
		Int("workers", cfg.Workers).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := directory.New(cfg.DirectoryBase, cfg.DirectoryKey, cfg.DirectoryRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize directory client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ing := app.NewIngestionService(client, repo, cache)

	ids, err := client.ListClubIDs(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("listing club IDs failed")
	}
	log.Info().Int("count", len(ids)).Msg("club IDs fetched")

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, id := range ids {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(clubID string) {
			defer wg.Done()
			defer sem.Release(1)

			if err := ing.IngestClub(ctx, clubID); err != nil {
				log.Warn().Str("id", clubID).Err(err).Msg("ingest failed")
				return
			}
			log.Info().Str("id", clubID).Msg("ingest ok")
		}(id)
	}

	wg.Wait()
	log.Info().Msg("ingestion completed")
}
