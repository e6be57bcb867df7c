package unabated

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	endpointGameOdds      = "/v2/markets/gameOdds"
	endpointTeams         = "/v2/teams"
	endpointMarketSources = "/v2/marketSources"
)

// Client é o cliente HTTP da Unabated API v2 com retry e backoff.
// A autenticação vai como parâmetro de query "x-api-key" (não é header).
type Client struct {
	baseURL    string
	apiKey     string
	http       *http.Client
	log        *zap.Logger
	maxRetries int
	retryWait  time.Duration // base do backoff; reduzida em testes
}

func NewClient(baseURL, apiKey string, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log:        log,
		maxRetries: 3,
		retryWait:  time.Second,
	}
}

// SnapshotEndpoint retorna a URL completa do snapshot (usada na metadata do feed)
func (c *Client) SnapshotEndpoint() string {
	return c.baseURL + endpointGameOdds
}

// FetchGameOddsSnapshot busca o snapshot completo de odds atuais
func (c *Client) FetchGameOddsSnapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	if err := c.getJSON(ctx, endpointGameOdds, nil, &snap); err != nil {
		return nil, fmt.Errorf("fetch game odds snapshot: %w", err)
	}
	return &snap, nil
}

// FetchTeams busca os times de uma liga (enriquecimento de nomes)
func (c *Client) FetchTeams(ctx context.Context, leagueID int) ([]Team, error) {
	params := url.Values{}
	params.Set("leagues", strconv.Itoa(leagueID))

	var teams []Team
	if err := c.getJSON(ctx, endpointTeams, params, &teams); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}
	return teams, nil
}

// FetchMarketSources busca a lista de sportsbooks disponíveis (metadata)
func (c *Client) FetchMarketSources(ctx context.Context) ([]MarketSource, error) {
	var sources []MarketSource
	if err := c.getJSON(ctx, endpointMarketSources, nil, &sources); err != nil {
		return nil, fmt.Errorf("fetch market sources: %w", err)
	}
	return sources, nil
}

// getJSON executa GET com retry: 401/403 falham direto, 429 espera com backoff
// exponencial, timeout/erro de transporte espera o intervalo base e tenta de novo
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("x-api-key", c.apiKey)

	reqURL := c.baseURL + endpoint + "?" + params.Encode()

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "MLB-Odds-Feed/2.0")

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			c.log.Warn("unabated request failed",
				zap.String("endpoint", endpoint),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			if err := c.sleep(ctx, c.retryWait); err != nil {
				return err
			}
			continue
		}

		switch {
		case resp.StatusCode == http.StatusUnauthorized:
			drain(resp)
			return fmt.Errorf("authentication failed - check API key")
		case resp.StatusCode == http.StatusForbidden:
			drain(resp)
			return fmt.Errorf("access forbidden - check API permissions")
		case resp.StatusCode == http.StatusTooManyRequests:
			drain(resp)
			wait := c.retryWait * (1 << attempt)
			c.log.Warn("rate limit exceeded, waiting",
				zap.String("endpoint", endpoint),
				zap.Duration("wait", wait),
			)
			lastErr = fmt.Errorf("rate limited (http 429)")
			if err := c.sleep(ctx, wait); err != nil {
				return err
			}
			continue
		case resp.StatusCode >= 300:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			drain(resp)
			lastErr = fmt.Errorf("unabated http %d: %s", resp.StatusCode, string(body))
			if err := c.sleep(ctx, c.retryWait); err != nil {
				return err
			}
			continue
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		drain(resp)
		if err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	return fmt.Errorf("failed after %d attempts: %w", c.maxRetries, lastErr)
}

// sleep aguarda respeitando cancelamento de contexto
func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
