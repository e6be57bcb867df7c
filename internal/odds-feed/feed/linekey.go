package feed

import (
	"fmt"
	"strconv"
	"strings"
)

// LineKey é a tripla decodificada da chave compacta do fornecedor
// (formato exato "si<int>:ms<int>:an<int>", ex: "si0:ms7:an0").
// A forma em string fica restrita à fronteira de ingestão.
type LineKey struct {
	Side         int // 0 = visitante/over, 1 = mandante/under
	SportsbookID int
	Alternate    int // 0 = linha principal
}

// IsMainLine indica se a chave aponta para a linha principal do mercado.
// Linhas alternativas (an != 0) não são expostas nesta versão.
func (k LineKey) IsMainLine() bool { return k.Alternate == 0 }

// ParseLineKey decodifica a chave compacta. Qualquer desvio do formato
// (número de segmentos, prefixo, sufixo não numérico ou negativo) retorna
// erro; quem chama descarta a linha sem abortar o evento.
func ParseLineKey(raw string) (LineKey, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return LineKey{}, fmt.Errorf("line key %q: expected 3 segments, got %d", raw, len(parts))
	}

	side, err := parseSegment(parts[0], "si")
	if err != nil {
		return LineKey{}, fmt.Errorf("line key %q: %w", raw, err)
	}
	source, err := parseSegment(parts[1], "ms")
	if err != nil {
		return LineKey{}, fmt.Errorf("line key %q: %w", raw, err)
	}
	alternate, err := parseSegment(parts[2], "an")
	if err != nil {
		return LineKey{}, fmt.Errorf("line key %q: %w", raw, err)
	}

	if side != 0 && side != 1 {
		return LineKey{}, fmt.Errorf("line key %q: side %d out of range", raw, side)
	}

	return LineKey{Side: side, SportsbookID: source, Alternate: alternate}, nil
}

// parseSegment valida o prefixo literal de dois caracteres e o sufixo
// inteiro não negativo
func parseSegment(seg, prefix string) (int, error) {
	if !strings.HasPrefix(seg, prefix) {
		return 0, fmt.Errorf("segment %q: missing %q prefix", seg, prefix)
	}
	suffix := seg[len(prefix):]
	if suffix == "" {
		return 0, fmt.Errorf("segment %q: empty numeric suffix", seg)
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, fmt.Errorf("segment %q: non-numeric suffix", seg)
	}
	if n < 0 {
		return 0, fmt.Errorf("segment %q: negative value", seg)
	}
	return n, nil
}
