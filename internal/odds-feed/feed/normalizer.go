package feed

import (
	"sort"
	"strconv"
	"strings"

	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/dto"
	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/unabated"
)

// Mercados normalizados expostos no feed
const (
	MarketMoneyline = "moneyline"
	MarketSpread    = "spread"
	MarketTotal     = "total"
)

// betTypes mapeia o id de bet type do fornecedor para o mercado normalizado.
// Ids desconhecidos são ignorados sem erro.
var betTypes = map[int]string{
	1: MarketMoneyline,
	2: MarketSpread, // run line no MLB
	3: MarketTotal,
}

// MarketTypes retorna os mercados suportados na ordem da metadata do feed
func MarketTypes() []string {
	return []string{MarketSpread, MarketMoneyline, MarketTotal}
}

// oddsBuilder acumula no máximo um registro por (mercado, sportsbook),
// indexado pelo nome do sportsbook e preservando a ordem de primeira
// aparição. A serialização em sequência ordenada acontece só em build().
type oddsBuilder struct {
	moneyline map[string]*dto.MoneylineOdds
	spread    map[string]*dto.SpreadOdds
	total     map[string]*dto.TotalOdds

	moneylineOrder []string
	spreadOrder    []string
	totalOrder     []string
}

func newOddsBuilder() *oddsBuilder {
	return &oddsBuilder{
		moneyline: make(map[string]*dto.MoneylineOdds),
		spread:    make(map[string]*dto.SpreadOdds),
		total:     make(map[string]*dto.TotalOdds),
	}
}

// NormalizeMarkets percorre o container de linhas de um evento e preenche as
// odds do jogo. Chaves malformadas, linhas alternativas e bet types
// desconhecidos são descartados individualmente; nada aqui aborta o evento.
func NormalizeMarkets(lines map[string]unabated.BetTypeLines, refs References, game *dto.Game) {
	b := newOddsBuilder()

	// Ordenação lexicográfica das chaves para saída determinística
	// (a "ordem de primeira aparição" passa a ser estável entre execuções)
	keys := make([]string, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, rawKey := range keys {
		lk, err := ParseLineKey(rawKey)
		if err != nil {
			continue
		}
		if !lk.IsMainLine() {
			continue
		}

		book := refs.SportsbookName(lk.SportsbookID)

		for btKey, line := range lines[rawKey] {
			market, ok := marketForBetType(btKey)
			if !ok {
				continue
			}
			b.addLine(market, book, lk.Side, line)
		}
	}

	game.Odds = b.build()
}

// marketForBetType decodifica a chave "bt<id>" e resolve o mercado
func marketForBetType(key string) (string, bool) {
	if !strings.HasPrefix(key, "bt") {
		return "", false
	}
	id, err := strconv.Atoi(key[2:])
	if err != nil {
		return "", false
	}
	market, ok := betTypes[id]
	return market, ok
}

// addLine aplica uma linha ao registro combinado do sportsbook no mercado
// indicado, criando o registro na primeira aparição e completando o lado
// que faltava nas seguintes
func (b *oddsBuilder) addLine(market, book string, side int, line unabated.Line) {
	switch market {
	case MarketMoneyline:
		entry, ok := b.moneyline[book]
		if !ok {
			entry = &dto.MoneylineOdds{Sportsbook: book, LastUpdated: line.ModifiedOn}
			b.moneyline[book] = entry
			b.moneylineOrder = append(b.moneylineOrder, book)
		}
		if side == 0 {
			entry.AwayOdds = line.AmericanPrice
		} else {
			entry.HomeOdds = line.AmericanPrice
		}

	case MarketSpread:
		entry, ok := b.spread[book]
		if !ok {
			entry = &dto.SpreadOdds{Sportsbook: book, LastUpdated: line.ModifiedOn}
			b.spread[book] = entry
			b.spreadOrder = append(b.spreadOrder, book)
		}
		if side == 0 {
			entry.AwayPoints = line.Points
			entry.AwayOdds = line.AmericanPrice
		} else {
			entry.HomePoints = line.Points
			entry.HomeOdds = line.AmericanPrice
		}

	case MarketTotal:
		entry, ok := b.total[book]
		if !ok {
			entry = &dto.TotalOdds{Sportsbook: book, LastUpdated: line.ModifiedOn}
			b.total[book] = entry
			b.totalOrder = append(b.totalOrder, book)
		}
		// total_points vem do primeiro lado que carregar points
		if entry.TotalPoints == nil && line.Points != nil {
			entry.TotalPoints = line.Points
		}
		if side == 0 {
			entry.OverOdds = line.AmericanPrice
		} else {
			entry.UnderOdds = line.AmericanPrice
		}
	}
}

// build serializa os registros acumulados em sequências ordenadas por
// primeira aparição
func (b *oddsBuilder) build() dto.GameOdds {
	out := dto.GameOdds{
		Spread:    make([]dto.SpreadOdds, 0, len(b.spreadOrder)),
		Moneyline: make([]dto.MoneylineOdds, 0, len(b.moneylineOrder)),
		Total:     make([]dto.TotalOdds, 0, len(b.totalOrder)),
	}
	for _, book := range b.spreadOrder {
		out.Spread = append(out.Spread, *b.spread[book])
	}
	for _, book := range b.moneylineOrder {
		out.Moneyline = append(out.Moneyline, *b.moneyline[book])
	}
	for _, book := range b.totalOrder {
		out.Total = append(out.Total, *b.total[book])
	}
	return out
}
