package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	oddscache "github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/cache"
	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/dto"
	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/feed"
	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/httpapi"
	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/publisher"
	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/unabated"
	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/ws"
	sharedcache "github.com/radieske/mlb-odds-feed-poc/internal/shared/cache"
	"github.com/radieske/mlb-odds-feed-poc/internal/shared/config"
	"github.com/radieske/mlb-odds-feed-poc/internal/shared/logger"
	"github.com/radieske/mlb-odds-feed-poc/internal/shared/metrics"
)

func main() {
	// carrega config
	cfg := config.Load()

	// inicia logger
	log, err := logger.New(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service", zap.String("service", cfg.ServiceName), zap.String("env", cfg.Env))

	if cfg.UnabatedAPIKey == "" {
		log.Warn("UNABATED_API_KEY not set, upstream requests will fail")
	}

	// cliente do fornecedor e gerador do feed
	client := unabated.NewClient(cfg.UnabatedBaseURL, cfg.UnabatedAPIKey, log)
	gen := feed.NewGenerator(client, cfg.LeagueID, log)

	// cache do feed: memória local ou Redis compartilhado
	var (
		feedCache oddscache.FeedCache
		healthFn  metrics.HealthFunc
	)
	switch cfg.CacheBackend {
	case "redis":
		redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatal("failed to connect redis", zap.Error(err))
		}
		defer redisClient.Close()
		log.Info("redis connected")

		feedCache = oddscache.NewRedis(redisClient, cfg.CacheTTL, nil)
		healthFn = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	default:
		feedCache = oddscache.NewMemory(cfg.CacheTTL, nil)
	}

	// publisher Kafka opcional (KAFKA_BROKERS vazio desativa)
	var pub *publisher.KafkaPublisher
	if cfg.KafkaBrokers != "" {
		pub = publisher.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ","), cfg.TopicOddsFeed, log)
		defer pub.Close()
		log.Info("kafka publisher ready", zap.String("topic", cfg.TopicOddsFeed))
	}

	// hub WebSocket para atualizações por jogo
	hub := ws.NewHub(func(r *http.Request) bool { return true })

	// Métricas Prometheus do ciclo de vida do feed
	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{Name: "odds_feed_cache_hits_total", Help: "feeds servidos do cache"})
	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{Name: "odds_feed_cache_misses_total", Help: "gerações disparadas por cache frio"})
	staleServed := prometheus.NewCounter(prometheus.CounterOpts{Name: "odds_feed_stale_served_total", Help: "cópias vencidas servidas após falha da API"})
	feedErrors := prometheus.NewCounter(prometheus.CounterOpts{Name: "odds_feed_errors_total", Help: "feeds de erro devolvidos ao cliente"})
	prometheus.MustRegister(cacheHits, cacheMisses, staleServed, feedErrors)

	api := &httpapi.API{
		Gen:      gen,
		Cache:    feedCache,
		CacheTTL: cfg.CacheTTL,
		Log:      log,
		LogosDir: cfg.LogosDir,
		Endpoint: client.SnapshotEndpoint(),

		// Após cada feed novo: broadcast WS e, se habilitado, publica no Kafka
		Notify: func(f dto.Feed) {
			hub.BroadcastFeed(f)
			if pub != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := pub.PublishFeed(ctx, f); err != nil {
					log.Warn("kafka publish failed", zap.Error(err))
				}
			}
		},
		WSHandler: hub.HandleWS,

		OnCacheHit:  func() { cacheHits.Inc() },
		OnCacheMiss: func() { cacheMisses.Inc() },
		OnStale:     func() { staleServed.Inc() },
		OnFeedError: func() { feedErrors.Inc() },
	}

	// servidor de métricas e health em porta separada
	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, healthFn)
	log.Info("metrics/health server starting", zap.String("addr", ":"+cfg.MetricsPort))

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: api.Router(),
	}

	go func() {
		log.Info("http server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()

	log.Info("shutting down")
	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
	_ = metricsSrv.Shutdown(shCtx)
	log.Info("odds-feed-service stopped")
}
