package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// cores usadas no badge SVG gerado quando a casa não tem logo em disco
var logoColors = map[string]string{
	"espn bet":   "#d50000",
	"fanatics":   "#0066cc",
	"fanduel":    "#1e3a8a",
	"draftkings": "#f59e0b",
	"betmgm":     "#059669",
	"caesars":    "#dc2626",
	"caesers":    "#dc2626", // grafia errada comum nos dados do fornecedor
	"bet365":     "#ffb400",
	"unabated":   "#4a90e2",
	"betrivers":  "#0891b2",
	"pointsbet":  "#7c3aed",
	"wynnbet":    "#be123c",
	"bovada":     "#ea580c",
	"betonline":  "#16a34a",
	"bookmaker":  "#0f172a",
	"pinnacle":   "#dc2626",
	"circa":      "#f59e0b",
}

const defaultLogoColor = "#4a90e2"

var logoMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
}

// serveLogo serve o logo da casa de apostas a partir do diretório configurado;
// sem arquivo no disco, gera um SVG com a inicial do nome
func (a *API) serveLogo(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "sportsbook")
	name, err := url.PathUnescape(raw)
	if err != nil {
		name = raw
	}

	// tenta o nome como veio (com e sem decode) e depois minúsculo + extensão
	candidates := []string{name, raw}
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".svg"} {
		candidates = append(candidates, strings.ToLower(name)+ext)
	}
	for _, cand := range candidates {
		if a.serveLogoFile(w, cand) {
			return
		}
	}

	a.writeLogoBadge(w, name)
}

func (a *API) serveLogoFile(w http.ResponseWriter, name string) bool {
	if a.LogosDir == "" || name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return false
	}
	path := filepath.Join(a.LogosDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	mime := logoMimeTypes[strings.ToLower(filepath.Ext(name))]
	if mime == "" {
		mime = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
	return true
}

// writeLogoBadge devolve um SVG 32x32 com a inicial da casa sobre sua cor
func (a *API) writeLogoBadge(w http.ResponseWriter, name string) {
	color, ok := logoColors[strings.ToLower(name)]
	if !ok {
		color = defaultLogoColor
	}
	initial := "?"
	if name != "" {
		initial = strings.ToUpper(name[:1])
	}

	svg := fmt.Sprintf(`<svg width="32" height="32" viewBox="0 0 32 32" xmlns="http://www.w3.org/2000/svg">
    <rect width="32" height="32" rx="6" fill="%s"/>
    <text x="16" y="22" font-family="Arial, sans-serif" font-size="16" font-weight="bold"
          fill="white" text-anchor="middle">%s</text>
</svg>`, color, initial)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(svg))
}
