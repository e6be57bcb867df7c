package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/feed"
	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/unabated"
	"github.com/radieske/mlb-odds-feed-poc/internal/shared/config"
	"github.com/radieske/mlb-odds-feed-poc/internal/shared/logger"
)

// feed-export gera o feed uma única vez e grava o JSON indentado em stdout
// ou no arquivo indicado por -o. Sai com código 1 quando o feed é de erro.
func main() {
	out := flag.String("o", "", "arquivo de saída (default: stdout)")
	flag.Parse()

	cfg := config.Load()
	log, err := logger.New("feed-export", cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	client := unabated.NewClient(cfg.UnabatedBaseURL, cfg.UnabatedAPIKey, log)
	gen := feed.NewGenerator(client, cfg.LeagueID, log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result := gen.Generate(ctx)

	body, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal("feed marshal failed", zap.Error(err))
	}
	body = append(body, '\n')

	if *out != "" {
		if err := os.WriteFile(*out, body, 0o644); err != nil {
			log.Fatal("write output file", zap.String("path", *out), zap.Error(err))
		}
		log.Info("feed written", zap.String("path", *out), zap.Int("total_games", result.FeedInfo.TotalGames))
	} else {
		if _, err := os.Stdout.Write(body); err != nil {
			log.Fatal("write stdout", zap.Error(err))
		}
	}

	if result.IsError() {
		log.Error("feed generation failed", zap.String("error", result.FeedInfo.Error))
		os.Exit(1)
	}
}
