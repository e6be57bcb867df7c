package feed

import (
	"fmt"
	"strconv"

	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/dto"
	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/unabated"
)

const (
	sideAway = "0"
	sideHome = "1"
)

// statusNames mapeia o statusId numérico do fornecedor para o nome legível.
// Conjunto fechado; ids fora dele viram "Unknown".
var statusNames = map[int]string{
	1: "Pre-game",
	2: "Live",
	3: "Final",
	4: "Delayed",
	5: "Postponed",
	6: "Cancelled",
}

// StatusName converte o statusId para o nome do contrato de saída
func StatusName(id int) string {
	if name, ok := statusNames[id]; ok {
		return name
	}
	return "Unknown"
}

// DecodeEvent extrai o esqueleto do jogo normalizado (sem odds) de um evento
// bruto. Retorna ok=false quando o evento é inválido: sem eventId ou sem os
// participantes dos dois lados. Evento inválido é descartado sem afetar o
// restante do lote.
func DecodeEvent(ev unabated.Event, refs References) (dto.Game, bool) {
	if ev.EventID == 0 {
		return dto.Game{}, false
	}

	away, okAway := ev.EventTeams[sideAway]
	home, okHome := ev.EventTeams[sideHome]
	if !okAway || !okHome {
		return dto.Game{}, false
	}

	awayName := refs.TeamName(away.ID)
	homeName := refs.TeamName(home.ID)

	// statusId ausente equivale a 1 (Pre-game), seguindo o fornecedor
	statusID := 1
	if ev.StatusID != nil {
		statusID = *ev.StatusID
	}

	return dto.Game{
		GameID:    strconv.FormatInt(ev.EventID, 10),
		EventName: fmt.Sprintf("%s at %s", awayName, homeName),
		GameTime:  ev.EventStart,
		AwayTeam:  awayName,
		HomeTeam:  homeName,
		Status:    StatusName(statusID),
		AwayScore: away.Score,
		HomeScore: home.Score,
		GameClock: ev.GameClock,
		Odds: dto.GameOdds{
			Spread:    []dto.SpreadOdds{},
			Moneyline: []dto.MoneylineOdds{},
			Total:     []dto.TotalOdds{},
		},
	}, true
}
