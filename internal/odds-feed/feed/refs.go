package feed

import (
	"fmt"

	"github.com/radieske/mlb-odds-feed-poc/internal/odds-feed/unabated"
)

// References são as tabelas de consulta montadas uma vez por snapshot:
// sportsbook-id -> nome e team-id -> registro de time.
// Somente leitura depois de montadas; pertencem a uma única geração de feed.
type References struct {
	sportsbooks map[int]string
	teams       map[int]unabated.Team
}

// BuildReferences monta as tabelas a partir das listas brutas do fornecedor.
// Entradas sem id são descartadas; ids duplicados ficam com a última entrada.
// Nunca falha: listas ausentes ou vazias geram tabelas vazias e os lookups
// caem nos rótulos sintetizados.
func BuildReferences(sources []unabated.MarketSource, teams []unabated.Team) References {
	refs := References{
		sportsbooks: make(map[int]string, len(sources)),
		teams:       make(map[int]unabated.Team, len(teams)),
	}

	for _, s := range sources {
		if s.ID == nil {
			continue
		}
		refs.sportsbooks[*s.ID] = s.Name
	}

	for _, t := range teams {
		if t.ID == nil {
			continue
		}
		refs.teams[*t.ID] = t
	}

	return refs
}

// SportsbookName resolve o nome do sportsbook; sintetiza "Book_<id>" quando
// o id não existe na tabela
func (r References) SportsbookName(id int) string {
	if name, ok := r.sportsbooks[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Book_%d", id)
}

// TeamName resolve o nome do time; sintetiza "Team <id>" quando o id não
// existe na tabela
func (r References) TeamName(id int) string {
	if t, ok := r.teams[id]; ok && t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("Team %d", id)
}
