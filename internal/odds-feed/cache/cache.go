package cache

import (
	"context"
	"sync"
	"time"

	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/dto"
)

// Clock injeta o relógio no cache; em testes usa-se um relógio falso para
// exercitar expiração de forma determinística
type Clock func() time.Time

// Info descreve o estado atual do cache (exposto em /status)
type Info struct {
	HasData     bool
	LastUpdated time.Time
	Age         time.Duration
	Expired     bool
}

// FeedCache guarda o último feed gerado por uma janela curta.
// Get respeita o TTL; GetStale devolve a cópia mesmo vencida (usada quando a
// geração falha e ainda existe um feed antigo para servir).
type FeedCache interface {
	Get(ctx context.Context) (dto.Feed, bool)
	GetStale(ctx context.Context) (dto.Feed, bool)
	Set(ctx context.Context, f dto.Feed) error
	Info(ctx context.Context) Info
}

// Memory é o cache de slot único em memória do processo
type Memory struct {
	mu       sync.RWMutex
	feed     dto.Feed
	storedAt time.Time
	has      bool

	ttl time.Duration
	now Clock
}

// NewMemory cria o cache em memória; now nil usa time.Now
func NewMemory(ttl time.Duration, now Clock) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{ttl: ttl, now: now}
}

func (m *Memory) Get(_ context.Context) (dto.Feed, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.has || m.now().Sub(m.storedAt) >= m.ttl {
		return dto.Feed{}, false
	}
	return m.feed, true
}

func (m *Memory) GetStale(_ context.Context) (dto.Feed, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.has {
		return dto.Feed{}, false
	}
	return m.feed, true
}

func (m *Memory) Set(_ context.Context, f dto.Feed) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feed = f
	m.storedAt = m.now()
	m.has = true
	return nil
}

func (m *Memory) Info(_ context.Context) Info {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.has {
		return Info{}
	}
	age := m.now().Sub(m.storedAt)
	return Info{
		HasData:     true,
		LastUpdated: m.storedAt,
		Age:         age,
		Expired:     age >= m.ttl,
	}
}
