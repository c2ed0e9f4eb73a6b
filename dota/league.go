package dota

import (
	"context"
	"errors"
	"strings"
)

var ErrLeagueNotConfigured = errors.New("league_id no está configurado")

// LeagueService agrupa las operaciones de alto nivel sobre una liga
type LeagueService struct {
	client   *Client
	leagueID int
}

func NewLeagueService(client *Client, leagueID int) *LeagueService {
	return &LeagueService{client: client, leagueID: leagueID}
}

func (s *LeagueService) requireLeagueID() (int, error) {
	if s.leagueID <= 0 {
		return 0, ErrLeagueNotConfigured
	}
	return s.leagueID, nil
}

func (s *LeagueService) Overview(ctx context.Context) (*League, error) {
	id, err := s.requireLeagueID()
	if err != nil {
		return nil, err
	}
	return s.client.League(ctx, id)
}

func (s *LeagueService) RecentMatches(ctx context.Context, limit int) ([]LeagueMatch, error) {
	id, err := s.requireLeagueID()
	if err != nil {
		return nil, err
	}
	return s.client.LeagueMatches(ctx, id, limit)
}

// FindLeaguesByName compara nombres ignorando espacios extremos y mayúsculas
func (s *LeagueService) FindLeaguesByName(ctx context.Context, name string) ([]League, error) {
	leagues, err := s.client.Leagues(ctx)
	if err != nil {
		return nil, err
	}
	target := strings.ToLower(strings.TrimSpace(name))
	var out []League
	for _, l := range leagues {
		if strings.ToLower(strings.TrimSpace(l.Name)) == target {
			out = append(out, l)
		}
	}
	return out, nil
}
