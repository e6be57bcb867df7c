package dto

// Contrato de saída do feed normalizado. Os nomes de campo aqui são o contrato
// de wire consumido por páginas/apps; mudanças quebram consumidores.

// Feed é o documento completo servido em /feed
type Feed struct {
	FeedInfo FeedInfo `json:"feed_info"`
	Games    []Game   `json:"games"`
}

// FeedInfo é o bloco de metadata do feed
// A variante de erro preenche Error e zera TotalGames
type FeedInfo struct {
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	GeneratedAt          string   `json:"generated_at"`
	Source               string   `json:"source"`
	APIEndpoint          string   `json:"api_endpoint,omitempty"`
	Error                string   `json:"error,omitempty"`
	TotalGames           int      `json:"total_games"`
	AvailableSportsbooks []string `json:"available_sportsbooks,omitempty"`
	MarketTypes          []string `json:"market_types,omitempty"`
	League               string   `json:"league,omitempty"`
}

// IsError indica se o feed carrega a variante de metadata de erro
func (f Feed) IsError() bool { return f.FeedInfo.Error != "" }

// Game é um jogo normalizado com odds por sportsbook
type Game struct {
	GameID    string   `json:"game_id"`
	EventName string   `json:"event_name"` // "<visitante> at <mandante>"
	GameTime  string   `json:"game_time,omitempty"`
	AwayTeam  string   `json:"away_team"`
	HomeTeam  string   `json:"home_team"`
	Status    string   `json:"status"`
	AwayScore *int     `json:"away_score"`
	HomeScore *int     `json:"home_score"`
	GameClock string   `json:"game_clock,omitempty"`
	Odds      GameOdds `json:"odds"`
}

// GameOdds agrupa os três mercados na ordem fixa do contrato
type GameOdds struct {
	Spread    []SpreadOdds    `json:"spread"`
	Moneyline []MoneylineOdds `json:"moneyline"`
	Total     []TotalOdds     `json:"total"`
}

// MoneylineOdds é o registro combinado de moneyline de um sportsbook.
// Preços em odds americanas; ponteiro nulo enquanto o lado não foi visto.
type MoneylineOdds struct {
	Sportsbook  string `json:"sportsbook"`
	AwayOdds    *int   `json:"away_odds"`
	HomeOdds    *int   `json:"home_odds"`
	LastUpdated string `json:"last_updated,omitempty"`
}

// SpreadOdds é o registro combinado de spread (run line), com pontos por lado
type SpreadOdds struct {
	Sportsbook  string   `json:"sportsbook"`
	AwayPoints  *float64 `json:"away_points"`
	AwayOdds    *int     `json:"away_odds"`
	HomePoints  *float64 `json:"home_points"`
	HomeOdds    *int     `json:"home_odds"`
	LastUpdated string   `json:"last_updated,omitempty"`
}

// TotalOdds é o registro combinado de total (over/under)
// Lado 0 contribui o preço do over, lado 1 o do under
type TotalOdds struct {
	Sportsbook  string   `json:"sportsbook"`
	TotalPoints *float64 `json:"total_points"`
	OverOdds    *int     `json:"over_odds"`
	UnderOdds   *int     `json:"under_odds"`
	LastUpdated string   `json:"last_updated,omitempty"`
}
