package main

import (
	"context"
	"flag"
	"os"

	"market-insight-api/internal/config"
	"market-insight-api/internal/logging"
	"market-insight-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the population CSV file to import")
	batch := flag.Int("batch", 5000, "Rows per COPY batch")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}
	if *batch <= 0 {
		*batch = 5000
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open file")
	}
	defer f.Close()

	records, err := parsePopulationCSV(f)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("cannot parse population CSV")
	}
	log.Info().Int("records", len(records)).Str("file", *file).Msg("parsed population records")

	ctx := context.Background()
	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	var imported int64
	for start := 0; start < len(records); start += *batch {
		end := min(start+*batch, len(records))
		n, err := repo.CopyPopulation(ctx, records[start:end])
		if err != nil {
			log.Fatal().Err(err).Int("batch_start", start).Int64("imported", imported).Msg("import failed")
		}
		imported += n
		log.Debug().Int("batch_start", start).Int64("rows", n).Msg("batch copied")
	}

	log.Info().Int64("imported", imported).Msg("population import finished")
}
