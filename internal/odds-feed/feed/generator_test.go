package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/unabated"
)

// fakeFetcher simula o cliente do fornecedor nos testes do gerador
type fakeFetcher struct {
	snapshot    *unabated.Snapshot
	snapshotErr error
	teams       []unabated.Team
	teamsErr    error
	sources     []unabated.MarketSource
	sourcesErr  error
}

func (f *fakeFetcher) FetchGameOddsSnapshot(context.Context) (*unabated.Snapshot, error) {
	return f.snapshot, f.snapshotErr
}

func (f *fakeFetcher) FetchTeams(context.Context, int) ([]unabated.Team, error) {
	return f.teams, f.teamsErr
}

func (f *fakeFetcher) FetchMarketSources(context.Context) ([]unabated.MarketSource, error) {
	return f.sources, f.sourcesErr
}

func (f *fakeFetcher) SnapshotEndpoint() string {
	return "https://partner-api.unabated.com/v2/markets/gameOdds"
}

// mockSnapshot replica um documento típico do fornecedor: um jogo da MLB com
// dois sportsbooks publicando os dois lados de moneyline, spread e total
func mockSnapshot() *unabated.Snapshot {
	mk := func(ml int, pts float64, tot int, modified string) unabated.BetTypeLines {
		return unabated.BetTypeLines{
			"bt1": {AmericanPrice: intp(ml), ModifiedOn: modified},
			"bt2": {AmericanPrice: intp(-110), Points: floatp(pts), ModifiedOn: modified},
			"bt3": {AmericanPrice: intp(tot), Points: floatp(8.5), ModifiedOn: modified},
		}
	}

	return &unabated.Snapshot{
		MarketSources: []unabated.MarketSource{
			{ID: intp(1), Name: "DraftKings", IsActive: true},
			{ID: intp(2), Name: "FanDuel", IsActive: true},
		},
		Teams: []unabated.Team{
			{ID: intp(1), Name: "New York Yankees", Abbreviation: "NYY"},
			{ID: intp(2), Name: "Boston Red Sox", Abbreviation: "BOS"},
		},
		GameOddsEvents: map[string][]unabated.Event{
			"lg5:pt1:pregame": {
				{
					EventID:    12345,
					EventStart: "2025-01-16T19:10:00Z",
					StatusID:   intp(1),
					EventTeams: map[string]unabated.EventTeam{
						"0": {ID: 1, RotationNumber: 901},
						"1": {ID: 2, RotationNumber: 902},
					},
					MarketSourceLines: map[string]unabated.BetTypeLines{
						"si0:ms1:an0": mk(-150, -1.5, -110, "2025-01-16T20:25:00Z"),
						"si1:ms1:an0": mk(130, 1.5, -110, "2025-01-16T20:25:00Z"),
						"si0:ms2:an0": mk(-145, -1.5, -105, "2025-01-16T20:28:00Z"),
						"si1:ms2:an0": mk(125, 1.5, -115, "2025-01-16T20:28:00Z"),
					},
				},
			},
			// grupo de outra liga: deve ser ignorado
			"lg1:pt1:pregame": {
				{
					EventID: 99999,
					EventTeams: map[string]unabated.EventTeam{
						"0": {ID: 1}, "1": {ID: 2},
					},
				},
			},
		},
	}
}

func newTestGenerator(f Fetcher) *Generator {
	g := NewGenerator(f, 5, zap.NewNop())
	g.now = func() time.Time {
		return time.Date(2025, 7, 15, 22, 30, 0, 0, time.UTC)
	}
	return g
}

func TestGenerateSuccess(t *testing.T) {
	f := &fakeFetcher{
		snapshot: mockSnapshot(),
		teams: []unabated.Team{
			{ID: intp(1), Name: "New York Yankees"},
			{ID: intp(2), Name: "Boston Red Sox"},
		},
		sources: []unabated.MarketSource{
			{ID: intp(1), Name: "DraftKings", IsActive: true},
			{ID: intp(2), Name: "FanDuel", IsActive: true},
			{ID: intp(3), Name: "Inativo", IsActive: false},
			{ID: intp(4), Name: "", IsActive: true}, // sem nome não entra na metadata
		},
	}

	out := newTestGenerator(f).Generate(context.Background())

	if out.IsError() {
		t.Fatalf("feed de erro inesperado: %s", out.FeedInfo.Error)
	}
	if out.FeedInfo.Title != "MLB Odds Feed - Unabated API v2.0" {
		t.Errorf("Title = %q", out.FeedInfo.Title)
	}
	if out.FeedInfo.GeneratedAt != "2025-07-15T22:30:00Z" {
		t.Errorf("GeneratedAt = %q", out.FeedInfo.GeneratedAt)
	}
	if out.FeedInfo.TotalGames != 1 || len(out.Games) != 1 {
		t.Fatalf("TotalGames = %d, len(Games) = %d, want 1/1", out.FeedInfo.TotalGames, len(out.Games))
	}
	if out.FeedInfo.League != "MLB (League ID: 5)" {
		t.Errorf("League = %q", out.FeedInfo.League)
	}
	if len(out.FeedInfo.AvailableSportsbooks) != 2 {
		t.Errorf("AvailableSportsbooks = %v, want 2 ativos com nome", out.FeedInfo.AvailableSportsbooks)
	}

	game := out.Games[0]
	if game.GameID != "12345" {
		t.Errorf("GameID = %q", game.GameID)
	}
	if game.EventName != "New York Yankees at Boston Red Sox" {
		t.Errorf("EventName = %q", game.EventName)
	}
	if game.Status != "Pre-game" {
		t.Errorf("Status = %q", game.Status)
	}

	// dois sportsbooks, os dois lados combinados em cada mercado
	if len(game.Odds.Moneyline) != 2 || len(game.Odds.Spread) != 2 || len(game.Odds.Total) != 2 {
		t.Fatalf("mercados = %d/%d/%d, want 2/2/2",
			len(game.Odds.Moneyline), len(game.Odds.Spread), len(game.Odds.Total))
	}
	for _, ml := range game.Odds.Moneyline {
		if ml.AwayOdds == nil || ml.HomeOdds == nil {
			t.Errorf("moneyline %s com lado faltando", ml.Sportsbook)
		}
	}
	for _, tot := range game.Odds.Total {
		if tot.TotalPoints == nil || *tot.TotalPoints != 8.5 {
			t.Errorf("total %s: TotalPoints = %v, want 8.5", tot.Sportsbook, tot.TotalPoints)
		}
	}
}

func TestGenerateSnapshotError(t *testing.T) {
	f := &fakeFetcher{snapshotErr: errors.New("boom")}

	out := newTestGenerator(f).Generate(context.Background())

	if !out.IsError() {
		t.Fatal("esperava feed de erro")
	}
	if out.FeedInfo.Title != "MLB Odds Feed - Error" {
		t.Errorf("Title = %q", out.FeedInfo.Title)
	}
	if out.FeedInfo.Error != "No odds data found or error fetching data from Unabated API" {
		t.Errorf("Error = %q", out.FeedInfo.Error)
	}
	if out.FeedInfo.TotalGames != 0 || len(out.Games) != 0 {
		t.Errorf("feed de erro deveria vir sem jogos")
	}
	if out.Games == nil {
		t.Error("Games deveria ser slice vazio, não nil")
	}
}

func TestGenerateNoGames(t *testing.T) {
	f := &fakeFetcher{
		snapshot: &unabated.Snapshot{
			GameOddsEvents: map[string][]unabated.Event{},
		},
	}

	out := newTestGenerator(f).Generate(context.Background())

	if !out.IsError() {
		t.Fatal("esperava feed de erro com snapshot vazio")
	}
	if out.FeedInfo.Error != "No MLB games could be processed from the API response" {
		t.Errorf("Error = %q", out.FeedInfo.Error)
	}
}

func TestGenerateTeamsFailureTolerated(t *testing.T) {
	// falha em /v2/teams não derruba a geração; nomes vêm do snapshot
	f := &fakeFetcher{
		snapshot: mockSnapshot(),
		teamsErr: errors.New("teams endpoint down"),
	}

	out := newTestGenerator(f).Generate(context.Background())

	if out.IsError() {
		t.Fatalf("feed de erro inesperado: %s", out.FeedInfo.Error)
	}
	if out.Games[0].AwayTeam != "New York Yankees" {
		t.Errorf("AwayTeam = %q", out.Games[0].AwayTeam)
	}
}

func TestGenerateMarketSourcesFailureTolerated(t *testing.T) {
	f := &fakeFetcher{
		snapshot:   mockSnapshot(),
		sourcesErr: errors.New("market sources down"),
	}

	out := newTestGenerator(f).Generate(context.Background())

	if out.IsError() {
		t.Fatalf("feed de erro inesperado: %s", out.FeedInfo.Error)
	}
	if len(out.FeedInfo.AvailableSportsbooks) != 0 {
		t.Errorf("AvailableSportsbooks = %v, want vazio", out.FeedInfo.AvailableSportsbooks)
	}
}

func TestGenerateSkipsInvalidEvents(t *testing.T) {
	snap := mockSnapshot()
	// evento sem participantes entra no mesmo grupo e deve ser pulado
	snap.GameOddsEvents["lg5:pt1:pregame"] = append(
		snap.GameOddsEvents["lg5:pt1:pregame"],
		unabated.Event{EventID: 777},
	)

	out := newTestGenerator(&fakeFetcher{snapshot: snap}).Generate(context.Background())

	if out.IsError() {
		t.Fatalf("feed de erro inesperado: %s", out.FeedInfo.Error)
	}
	if len(out.Games) != 1 {
		t.Errorf("len(Games) = %d, want 1 (inválido descartado)", len(out.Games))
	}
}

func TestGenerateAcceptsAlternateContainerField(t *testing.T) {
	// fornecedor emitindo o nome de campo alternativo do container de linhas
	snap := mockSnapshot()
	ev := snap.GameOddsEvents["lg5:pt1:pregame"][0]
	ev.MarketSourcesLines = ev.MarketSourceLines
	ev.MarketSourceLines = nil
	snap.GameOddsEvents["lg5:pt1:pregame"][0] = ev

	out := newTestGenerator(&fakeFetcher{snapshot: snap}).Generate(context.Background())

	if out.IsError() {
		t.Fatalf("feed de erro inesperado: %s", out.FeedInfo.Error)
	}
	if len(out.Games[0].Odds.Moneyline) != 2 {
		t.Errorf("moneyline = %d, want 2", len(out.Games[0].Odds.Moneyline))
	}
}
