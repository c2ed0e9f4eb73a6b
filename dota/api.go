package dota

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.opendota.com/api"

// ErrRateLimited permite detectar un 429 con errors.Is sobre un *APIError
var ErrRateLimited = errors.New("OpenDota devolvió 429 (rate limit)")

// ErrEmptyResponse indica que la respuesta (o el cache) decodificó a null
var ErrEmptyResponse = errors.New("respuesta vacía")

// APIError representa una respuesta no 2xx de OpenDota
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API retornó status %d: %s", e.StatusCode, e.Body)
}

func (e *APIError) Is(target error) bool {
	return target == ErrRateLimited && e.StatusCode == http.StatusTooManyRequests
}

type ClientOptions struct {
	BaseURL string
	APIKey  string
	// Pausa mínima entre requests; 0 desactiva el limitador
	RequestDelay time.Duration
	Timeout      time.Duration
	HTTPClient   *http.Client
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	limit := rate.Inf
	if opts.RequestDelay > 0 {
		limit = rate.Every(opts.RequestDelay)
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// Get hace un GET contra la API y decodifica el JSON en result.
// path puede llevar o no la barra inicial ("leagues" o "/leagues/123").
func (c *Client) Get(ctx context.Context, path string, query url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("error esperando rate limiter: %w", err)
	}

	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("error creando request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error en request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, URL: u, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("error decodificando respuesta: %w", err)
	}
	return nil
}

func dateQuery(days int) url.Values {
	q := url.Values{}
	if days > 0 {
		q.Set("date", strconv.Itoa(days))
	}
	return q
}

// HeroStats obtiene la lista de héroes con nombre interno y localizado
func (c *Client) HeroStats(ctx context.Context) ([]HeroStat, error) {
	var heroes []HeroStat
	if err := c.Get(ctx, "heroStats", nil, &heroes); err != nil {
		return nil, err
	}
	return heroes, nil
}

// PlayerHeroes obtiene partidas/victorias por héroe; days > 0 limita la ventana
func (c *Client) PlayerHeroes(ctx context.Context, accountID string, days int) ([]PlayerHero, error) {
	var heroes []PlayerHero
	if err := c.Get(ctx, fmt.Sprintf("players/%s/heroes", accountID), dateQuery(days), &heroes); err != nil {
		return nil, err
	}
	return heroes, nil
}

func (c *Client) PlayerWinLoss(ctx context.Context, accountID string, days int) (*WinLoss, error) {
	var wl WinLoss
	if err := c.Get(ctx, fmt.Sprintf("players/%s/wl", accountID), dateQuery(days), &wl); err != nil {
		return nil, err
	}
	return &wl, nil
}

func (c *Client) PlayerCounts(ctx context.Context, accountID string, days int) (*Counts, error) {
	var counts Counts
	if err := c.Get(ctx, fmt.Sprintf("players/%s/counts", accountID), dateQuery(days), &counts); err != nil {
		return nil, err
	}
	return &counts, nil
}

// PlayerMatches devuelve una página de partidas (offset) dentro de la ventana days
func (c *Client) PlayerMatches(ctx context.Context, accountID string, days, offset int) ([]PlayerMatch, error) {
	q := dateQuery(days)
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	var matches []PlayerMatch
	if err := c.Get(ctx, fmt.Sprintf("players/%s/matches", accountID), q, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (c *Client) PlayerProfile(ctx context.Context, accountID string) (*PlayersResponse, error) {
	var profile PlayersResponse
	if err := c.Get(ctx, fmt.Sprintf("players/%s", accountID), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) Leagues(ctx context.Context) ([]League, error) {
	var leagues []League
	if err := c.Get(ctx, "leagues", nil, &leagues); err != nil {
		return nil, err
	}
	return leagues, nil
}

func (c *Client) League(ctx context.Context, leagueID int) (*League, error) {
	var league League
	if err := c.Get(ctx, fmt.Sprintf("leagues/%d", leagueID), nil, &league); err != nil {
		return nil, err
	}
	return &league, nil
}

// LeagueMatches obtiene partidas de una liga; limit <= 0 no limita
func (c *Client) LeagueMatches(ctx context.Context, leagueID, limit int) ([]LeagueMatch, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var matches []LeagueMatch
	if err := c.Get(ctx, fmt.Sprintf("leagues/%d/matches", leagueID), q, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (c *Client) Team(ctx context.Context, teamID int) (*Team, error) {
	var team Team
	if err := c.Get(ctx, fmt.Sprintf("teams/%d", teamID), nil, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// IsWin decide el resultado de una partida del jugador; player_slot < 128 es Radiant
func IsWin(match PlayerMatch) bool {
	if match.RadiantWin == nil {
		return false
	}
	isRadiant := match.PlayerSlot < 128
	return isRadiant == *match.RadiantWin
}

// AggregateMatches agrupa partidas por héroe (games/wins)
func AggregateMatches(matches []PlayerMatch) map[int]PlayerHero {
	out := make(map[int]PlayerHero)
	for _, m := range matches {
		h := out[int(m.HeroID)]
		h.HeroID = m.HeroID
		h.Games++
		if IsWin(m) {
			h.Win++
		}
		out[int(m.HeroID)] = h
	}
	return out
}
