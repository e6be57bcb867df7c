package ws

// ClientMsg representa uma mensagem recebida do cliente WebSocket
// Type: subscribe | unsubscribe | ping
// GameID: obrigatório para subscribe/unsubscribe
type ClientMsg struct {
	Type   string `json:"type"`   // subscribe | unsubscribe | ping
	GameID string `json:"gameId"` // requerido em subscribe/unsubscribe
}

// GameUpdate representa uma atualização de odds de um jogo enviada aos
// clientes WebSocket inscritos
type GameUpdate struct {
	GameID  string      `json:"gameId"`
	Payload interface{} `json:"payload"`
}
