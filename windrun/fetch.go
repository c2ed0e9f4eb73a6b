package windrun

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"dota-draft-tools/logging"
)

const (
	URLHighSkill = "https://windrun.io/ability-high-skill"
	URLByHero    = "https://windrun.io/ability-by-hero"

	userAgent      = "dota-draft-tools/1.0 (+https://windrun.io)"
	requestTimeout = 25 * time.Second
)

// Fetcher descarga las páginas de windrun.io
type Fetcher struct {
	client    *http.Client
	HighSkill string
	ByHero    string
}

func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &Fetcher{client: client, HighSkill: URLHighSkill, ByHero: URLByHero}
}

// Pages es el HTML crudo de las dos páginas
type Pages struct {
	HighSkill string
	ByHero    string
}

func (f *Fetcher) FetchHTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("error creando request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	logging.Get().WithField("url", url).Debug("descargando página")
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error en request a %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error leyendo respuesta de %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s retornó status %d", url, resp.StatusCode)
	}
	return string(body), nil
}

// FetchPages descarga ambas páginas en paralelo; si una falla se cancela la otra
func (f *Fetcher) FetchPages(ctx context.Context) (Pages, error) {
	var pages Pages
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		html, err := f.FetchHTML(gCtx, f.HighSkill)
		if err != nil {
			return err
		}
		pages.HighSkill = html
		return nil
	})
	g.Go(func() error {
		html, err := f.FetchHTML(gCtx, f.ByHero)
		if err != nil {
			return err
		}
		pages.ByHero = html
		return nil
	})

	if err := g.Wait(); err != nil {
		return Pages{}, err
	}
	return pages, nil
}
