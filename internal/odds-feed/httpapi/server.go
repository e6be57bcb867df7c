package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/cache"
	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/dto"
)

// Generator produz o feed completo a partir do fornecedor de odds
type Generator interface {
	Generate(ctx context.Context) dto.Feed
}

// API expõe os endpoints REST do feed de odds da MLB
// O feed é servido do cache por uma janela curta; quando a geração falha e
// existe uma cópia antiga, ela é servida no lugar do feed de erro
type API struct {
	Gen      Generator
	Cache    cache.FeedCache
	CacheTTL time.Duration
	Log      *zap.Logger
	LogosDir string
	Endpoint string // endpoint do fornecedor, exposto em /status

	// Notify é chamado após cada feed novo entrar no cache (Kafka/WebSocket)
	Notify func(dto.Feed)

	// WSHandler, quando presente, é montado em /ws
	WSHandler http.HandlerFunc

	OnCacheHit  func() // métricas (counter++)
	OnCacheMiss func() // métricas
	OnStale     func() // métricas: cópia vencida servida após falha
	OnFeedError func() // métricas: feed de erro devolvido ao cliente
}

// Router retorna o roteador HTTP com os endpoints do feed
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/feed", a.getFeed)                    // Feed completo (JSON)
	r.Get("/status", a.getStatus)                // Estado do serviço e do cache
	r.Get("/games/count", a.getGamesCount)       // Apenas a contagem de jogos
	r.Get("/logos/{sportsbook}", a.serveLogo)    // Logo da casa de apostas
	if a.WSHandler != nil {
		r.Get("/ws", a.WSHandler) // Atualizações em tempo real por jogo
	}
	r.NotFound(a.notFound)
	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// currentFeed devolve o feed vigente: do cache quando dentro do TTL, senão
// gera um novo; feed de erro cai para a última cópia boa, se houver
func (a *API) currentFeed(ctx context.Context) dto.Feed {
	if feed, ok := a.Cache.Get(ctx); ok {
		a.Log.Info("returning cached feed data")
		if a.OnCacheHit != nil {
			a.OnCacheHit()
		}
		return feed
	}
	if a.OnCacheMiss != nil {
		a.OnCacheMiss()
	}

	a.Log.Info("fetching fresh feed data from Unabated API")
	feed := a.Gen.Generate(ctx)

	if feed.IsError() {
		if stale, ok := a.Cache.GetStale(ctx); ok {
			a.Log.Warn("returning expired cached data due to API error",
				zap.String("error", feed.FeedInfo.Error))
			if a.OnStale != nil {
				a.OnStale()
			}
			return stale
		}
		if a.OnFeedError != nil {
			a.OnFeedError()
		}
		return feed
	}

	if err := a.Cache.Set(ctx, feed); err != nil {
		a.Log.Warn("feed cache set failed", zap.Error(err))
	}
	a.Log.Info("successfully cached feed",
		zap.Int("total_games", feed.FeedInfo.TotalGames))
	if a.Notify != nil {
		a.Notify(feed)
	}
	return feed
}

// getFeed devolve o feed completo; ?pretty=true indenta o JSON
func (a *API) getFeed(w http.ResponseWriter, r *http.Request) {
	feed := a.currentFeed(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(a.CacheTTL.Seconds())))
	w.Header().Set("X-Total-Games", fmt.Sprintf("%d", feed.FeedInfo.TotalGames))

	var (
		body []byte
		err  error
	)
	switch r.URL.Query().Get("pretty") {
	case "true", "1", "yes":
		body, err = json.MarshalIndent(feed, "", "  ")
	default:
		body, err = json.Marshal(feed)
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// getStatus informa o estado do serviço e do cache
func (a *API) getStatus(w http.ResponseWriter, r *http.Request) {
	info := a.Cache.Info(r.Context())

	cacheBlock := map[string]any{
		"has_data":               info.HasData,
		"last_updated":           nil,
		"age_seconds":            int(info.Age.Seconds()),
		"cache_duration_minutes": int(a.CacheTTL.Minutes()),
		"is_expired":             info.Expired,
	}
	if info.HasData {
		cacheBlock["last_updated"] = info.LastUpdated.UTC().Format(time.RFC3339)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "operational",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"cache":     cacheBlock,
		"api": map[string]string{
			"source":   "Unabated API v2.0",
			"endpoint": a.Endpoint,
		},
	})
}

// getGamesCount devolve apenas a quantidade de jogos no feed vigente
func (a *API) getGamesCount(w http.ResponseWriter, r *http.Request) {
	feed := a.currentFeed(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"total_games": feed.FeedInfo.TotalGames,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"source":      "Unabated API v2.0",
	})
}

func (a *API) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":               "Not found",
		"message":             "The requested endpoint does not exist",
		"available_endpoints": []string{"/feed", "/status", "/games/count"},
		"timestamp":           time.Now().UTC().Format(time.RFC3339),
	})
}
