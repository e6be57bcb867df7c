package events

import (
	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/dto"
)

// Evento publicado no tópico "odds_feed_updates" a cada refresh do feed.
// Uma mensagem por jogo; a chave Kafka usa o GameID.
type GameOddsUpdate struct {
	GameID      string       `json:"game_id"`
	EventName   string       `json:"event_name"`
	Status      string       `json:"status"`
	Odds        dto.GameOdds `json:"odds"`
	GeneratedAt string       `json:"generated_at"`
	Source      string       `json:"source"` // "odds-feed-service"
}
