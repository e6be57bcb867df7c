package dto

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFeedIsError(t *testing.T) {
	if (Feed{}).IsError() {
		t.Error("feed sem campo error não é variante de erro")
	}
	f := Feed{FeedInfo: FeedInfo{Error: "boom"}}
	if !f.IsError() {
		t.Error("feed com campo error preenchido é variante de erro")
	}
}

func TestFeedWireContract(t *testing.T) {
	f := Feed{
		FeedInfo: FeedInfo{
			Title:       "MLB Odds Feed - Unabated API v2.0",
			GeneratedAt: "2025-07-15T22:30:00Z",
			Source:      "Unabated API v2.0",
			TotalGames:  1,
		},
		Games: []Game{
			{
				GameID:    "12345",
				EventName: "New York Yankees at Boston Red Sox",
				AwayTeam:  "New York Yankees",
				HomeTeam:  "Boston Red Sox",
				Status:    "Pre-game",
				Odds: GameOdds{
					Spread:    []SpreadOdds{},
					Moneyline: []MoneylineOdds{},
					Total:     []TotalOdds{},
				},
			},
		},
	}

	b, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)

	// nomes de campo do contrato (snake_case)
	for _, want := range []string{
		`"feed_info"`, `"total_games"`, `"game_id"`, `"event_name"`,
		`"away_team"`, `"home_team"`, `"spread"`, `"moneyline"`, `"total"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON sem o campo %s: %s", want, s)
		}
	}

	// placar ausente serializa como null explícito, não some do documento
	if !strings.Contains(s, `"away_score":null`) {
		t.Errorf("away_score deveria ser null explícito: %s", s)
	}
	// feed de sucesso não carrega o campo error
	if strings.Contains(s, `"error"`) {
		t.Errorf("feed de sucesso não deveria ter campo error: %s", s)
	}
	// mercados vazios serializam como [], não null
	if strings.Contains(s, `"spread":null`) {
		t.Errorf("mercado vazio deveria ser []: %s", s)
	}
}
