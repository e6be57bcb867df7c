package config

import (
	"os"
	"strconv"
	"time"

	ctopics "github.com/radieske/mlb-odds-feed-poc/pkg/contracts/topics"
)

// Config centraliza variáveis de ambiente e parâmetros de execução dos serviços
// Inclui credencial da API, cache, Kafka, portas e diretórios
type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string // ex: "odds-feed-service", "feed-export"
	LogLevel    string // nível do zap ("debug", "info", ...)

	// Fornecedor (Unabated API v2)
	UnabatedAPIKey  string
	UnabatedBaseURL string
	LeagueID        int // 5 = MLB

	// Cache do feed
	CacheBackend string        // "memory" ou "redis"
	CacheTTL     time.Duration // janela de validade do feed
	RedisAddr    string

	// Tópicos/canais
	KafkaBrokers  string // "a:9092,b:9092"; vazio desativa o publisher
	TopicOddsFeed string

	// Logos de sportsbooks servidos em /logos/{sportsbook}
	LogosDir string

	// Portas do serviço atual
	HTTPPort    string // Porta pública (API REST + WS)
	MetricsPort string // Porta exclusiva para /metrics e /healthz
}

// Load carrega variáveis de ambiente e define defaults para cada serviço
// Resolve portas conforme o SERVICE_NAME
func Load() Config {
	svc := getEnv("SERVICE_NAME", "odds-feed-service")
	env := getEnv("ENV", "local")

	cfg := Config{
		Env:         env,
		ServiceName: svc,
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		UnabatedAPIKey:  getEnv("UNABATED_API_KEY", ""),
		UnabatedBaseURL: getEnv("UNABATED_BASE_URL", "https://partner-api.unabated.com"),
		LeagueID:        getEnvInt("LEAGUE_ID", 5),

		CacheBackend: getEnv("CACHE_BACKEND", "memory"),
		CacheTTL:     getEnvDuration("CACHE_TTL", 5*time.Minute),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),

		KafkaBrokers:  getEnv("KAFKA_BROKERS", ""),
		TopicOddsFeed: getEnv("KAFKA_TOPIC_ODDS_FEED", ctopics.OddsFeedUpdates),

		LogosDir: getEnv("LOGOS_DIR", ""),
	}

	// Define portas padrão para cada serviço
	switch svc {
	case "odds-feed-service":
		cfg.HTTPPort = getEnv("HTTP_PORT", "8080")
		cfg.MetricsPort = getEnv("METRICS_PORT", "9095")
	case "feed-export":
		cfg.HTTPPort = "" // exporter não expõe HTTP
		cfg.MetricsPort = ""
	default:
		cfg.HTTPPort = getEnv("HTTP_PORT", "8080")
		cfg.MetricsPort = getEnv("METRICS_PORT", "9095")
	}

	return cfg
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// getEnvInt faz parse de inteiro; valor inválido cai no default
func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getEnvDuration faz parse de duração ("5m", "30s"); valor inválido cai no default
func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
