package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/dto"
)

const feedKey = "oddsfeed:current"

// envelope guarda o feed junto com o instante de escrita; a expiração é
// lógica (via relógio injetado), não do Redis, para que a cópia vencida
// continue disponível como stale
type envelope struct {
	StoredAt time.Time `json:"stored_at"`
	Feed     dto.Feed  `json:"feed"`
}

// Redis é o cache de feed compartilhável entre réplicas do serviço
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	now    Clock
}

// NewRedis cria o cache Redis; now nil usa time.Now
func NewRedis(c *redis.Client, ttl time.Duration, now Clock) *Redis {
	if now == nil {
		now = time.Now
	}
	return &Redis{client: c, ttl: ttl, now: now}
}

func (r *Redis) load(ctx context.Context) (envelope, bool) {
	b, err := r.client.Get(ctx, feedKey).Bytes()
	if err != nil {
		return envelope{}, false
	}
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return envelope{}, false
	}
	return env, true
}

func (r *Redis) Get(ctx context.Context) (dto.Feed, bool) {
	env, ok := r.load(ctx)
	if !ok || r.now().Sub(env.StoredAt) >= r.ttl {
		return dto.Feed{}, false
	}
	return env.Feed, true
}

func (r *Redis) GetStale(ctx context.Context) (dto.Feed, bool) {
	env, ok := r.load(ctx)
	if !ok {
		return dto.Feed{}, false
	}
	return env.Feed, true
}

func (r *Redis) Set(ctx context.Context, f dto.Feed) error {
	b, err := json.Marshal(envelope{StoredAt: r.now().UTC(), Feed: f})
	if err != nil {
		return err
	}
	// TTL físico bem maior que o lógico: a chave sobrevive vencida para
	// servir como stale, mas não fica para sempre no Redis
	return r.client.Set(ctx, feedKey, b, 12*r.ttl).Err()
}

func (r *Redis) Info(ctx context.Context) Info {
	env, ok := r.load(ctx)
	if !ok {
		return Info{}
	}
	age := r.now().Sub(env.StoredAt)
	return Info{
		HasData:     true,
		LastUpdated: env.StoredAt,
		Age:         age,
		Expired:     age >= r.ttl,
	}
}
