package feed

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/dto"
	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/unabated"
)

const (
	feedTitle      = "MLB Odds Feed - Unabated API v2.0"
	feedErrorTitle = "MLB Odds Feed - Error"
	feedSource     = "Unabated API v2.0"
)

// Fetcher abstrai o cliente do fornecedor (implementado por unabated.Client;
// mock em testes)
type Fetcher interface {
	FetchGameOddsSnapshot(ctx context.Context) (*unabated.Snapshot, error)
	FetchTeams(ctx context.Context, leagueID int) ([]unabated.Team, error)
	FetchMarketSources(ctx context.Context) ([]unabated.MarketSource, error)
	SnapshotEndpoint() string
}

// Generator executa a sequência completa de geração do feed:
// times (opcional) -> snapshot (obrigatório) -> decode+normalize ->
// market sources (opcional, só metadata). Sem estado entre invocações;
// cada chamada opera sobre um snapshot recém-buscado.
type Generator struct {
	fetcher  Fetcher
	leagueID int
	log      *zap.Logger

	// relógio injetável para timestamps determinísticos em teste
	now func() time.Time
}

func NewGenerator(f Fetcher, leagueID int, log *zap.Logger) *Generator {
	return &Generator{
		fetcher:  f,
		leagueID: leagueID,
		log:      log,
		now:      time.Now,
	}
}

// Generate produz o feed completo. Nunca retorna erro nem propaga panic:
// qualquer falha vira a variante de metadata de erro, sempre serializável.
func (g *Generator) Generate(ctx context.Context) (out dto.Feed) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("panic during feed generation", zap.Any("panic", r))
			out = g.errorFeed(fmt.Sprintf("internal error generating feed: %v", r))
		}
	}()

	// 1) Times da liga (falha tolerada; degrada a qualidade dos nomes)
	teams, err := g.fetcher.FetchTeams(ctx, g.leagueID)
	if err != nil {
		g.log.Warn("could not fetch teams, team names may not be accurate", zap.Error(err))
		teams = nil
	}

	// 2) Snapshot de odds (falha é fatal para esta geração)
	snap, err := g.fetcher.FetchGameOddsSnapshot(ctx)
	if err != nil {
		g.log.Error("failed to fetch game odds snapshot", zap.Error(err))
		return g.errorFeed("No odds data found or error fetching data from Unabated API")
	}

	// 3) Sobrescreve a tabela de times do snapshot com a versão dedicada
	if len(teams) > 0 {
		snap.Teams = teams
	}

	games := g.processSnapshot(snap)
	if len(games) == 0 {
		// lote vazio é indistinguível de falha total de processamento
		g.log.Warn("no games could be processed from the snapshot")
		return g.errorFeed("No MLB games could be processed from the API response")
	}

	// 4) Sportsbooks ativos para a metadata (falha tolerada)
	var available []string
	if sources, err := g.fetcher.FetchMarketSources(ctx); err != nil {
		g.log.Warn("could not fetch market sources for metadata", zap.Error(err))
	} else {
		for _, s := range sources {
			if s.IsActive && s.Name != "" {
				available = append(available, s.Name)
			}
		}
	}

	g.log.Info("feed generated", zap.Int("games", len(games)))

	return dto.Feed{
		FeedInfo: dto.FeedInfo{
			Title:                feedTitle,
			Description:          "MLB odds including spread, moneyline, and totals from all available sportsbooks via Unabated",
			GeneratedAt:          g.now().UTC().Format(time.RFC3339),
			Source:               feedSource,
			APIEndpoint:          g.fetcher.SnapshotEndpoint(),
			TotalGames:           len(games),
			AvailableSportsbooks: available,
			MarketTypes:          MarketTypes(),
			League:               g.leagueLabel(),
		},
		Games: games,
	}
}

// processSnapshot resolve referências e decodifica/normaliza os eventos da
// liga configurada. Evento inválido é pulado; o lote continua.
func (g *Generator) processSnapshot(snap *unabated.Snapshot) []dto.Game {
	refs := BuildReferences(snap.MarketSources, snap.Teams)

	// só grupos da liga configurada (ex: "lg5:pt1:pregame" para MLB)
	prefix := fmt.Sprintf("lg%d:", g.leagueID)
	groupKeys := make([]string, 0, len(snap.GameOddsEvents))
	for key := range snap.GameOddsEvents {
		if strings.HasPrefix(key, prefix) {
			groupKeys = append(groupKeys, key)
		}
	}
	sort.Strings(groupKeys)

	var games []dto.Game
	for _, key := range groupKeys {
		for _, ev := range snap.GameOddsEvents[key] {
			game, ok := DecodeEvent(ev, refs)
			if !ok {
				g.log.Debug("skipping invalid event", zap.Int64("event_id", ev.EventID))
				continue
			}
			NormalizeMarkets(ev.Lines(), refs, &game)
			games = append(games, game)
		}
	}
	return games
}

// errorFeed monta a variante de erro do feed, sempre bem formada
func (g *Generator) errorFeed(msg string) dto.Feed {
	return dto.Feed{
		FeedInfo: dto.FeedInfo{
			Title:       feedErrorTitle,
			Description: "Error occurred while fetching odds data",
			GeneratedAt: g.now().UTC().Format(time.RFC3339),
			Source:      feedSource,
			Error:       msg,
			TotalGames:  0,
		},
		Games: []dto.Game{},
	}
}

// leagueLabel devolve o rótulo de liga exibido na metadata
func (g *Generator) leagueLabel() string {
	if g.leagueID == 5 {
		return "MLB (League ID: 5)"
	}
	return fmt.Sprintf("League ID: %d", g.leagueID)
}
