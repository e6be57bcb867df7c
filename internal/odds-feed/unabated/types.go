package unabated

// Tipos brutos do documento /v2/markets/gameOdds da Unabated API v2.
// Existem só na fronteira de ingestão; o core trabalha com as formas
// normalizadas de internal/odds-feed/dto.

// Snapshot é o documento completo de odds atuais do fornecedor
type Snapshot struct {
	MarketSources  []MarketSource     `json:"marketSources"`
	Teams          []Team             `json:"teams"`
	GameOddsEvents map[string][]Event `json:"gameOddsEvents"` // chave com escopo de liga, ex: "lg5:pt1:pregame"
}

// MarketSource é um sportsbook cadastrado no fornecedor
// ID como ponteiro: entrada sem id é descartada na resolução de referências
type MarketSource struct {
	ID       *int   `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// Team é o registro de time retornado por /v2/teams
type Team struct {
	ID           *int   `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// Event é um jogo agendado/ao vivo/encerrado com suas linhas de mercado
type Event struct {
	EventID    int64                `json:"eventId"`
	EventStart string               `json:"eventStart"`
	StatusID   *int                 `json:"statusId"` // ausente equivale a 1 (Pre-game)
	GameClock  string               `json:"gameClock"`
	EventTeams map[string]EventTeam `json:"eventTeams"` // "0" = visitante, "1" = mandante

	// O fornecedor já foi observado emitindo o container de linhas com dois
	// nomes de campo ("...SourceLines" e "...SourcesLines"); aceitamos os dois
	// e o acesso passa sempre por Lines().
	MarketSourceLines  map[string]BetTypeLines `json:"gameOddsMarketSourceLines"`
	MarketSourcesLines map[string]BetTypeLines `json:"gameOddsMarketSourcesLines"`
}

// Lines retorna o container canônico de linhas de mercado do evento
func (e Event) Lines() map[string]BetTypeLines {
	if len(e.MarketSourceLines) > 0 {
		return e.MarketSourceLines
	}
	return e.MarketSourcesLines
}

// EventTeam é um participante do evento (lado 0 ou 1)
type EventTeam struct {
	ID             int  `json:"id"`
	RotationNumber int  `json:"rotationNumber"`
	Score          *int `json:"score"`
}

// BetTypeLines mapeia a chave de bet type ("bt1", "bt2", ...) para a linha
type BetTypeLines map[string]Line

// Line é uma linha publicada por um sportsbook para um bet type
type Line struct {
	AmericanPrice *int     `json:"americanPrice"` // preço em odds americanas (inteiro com sinal)
	Points        *float64 `json:"points"`        // spread/total; nulo em moneyline
	ModifiedOn    string   `json:"modifiedOn"`
}
