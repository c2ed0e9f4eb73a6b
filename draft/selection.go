package draft

import (
	"errors"
	"fmt"
)

// MaxSelection es el tamaño de un lobby de Ability Draft
const MaxSelection = 12

var (
	ErrUnknownHero   = errors.New("héroe desconocido")
	ErrSelectionFull = errors.New("selección llena")
)

// Selection es un conjunto ordenado de héroes del catálogo
type Selection struct {
	catalog *Catalog
	names   []string
	set     map[string]struct{}
}

func (c *Catalog) NewSelection(names ...string) (*Selection, error) {
	s := &Selection{catalog: c, set: make(map[string]struct{})}
	for _, n := range names {
		if err := s.Add(n); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add agrega un héroe. Repetir un héroe no hace nada.
func (s *Selection) Add(name string) error {
	resolved, ok := s.catalog.Resolve(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHero, name)
	}
	if _, dup := s.set[resolved]; dup {
		return nil
	}
	if len(s.names) >= MaxSelection {
		return fmt.Errorf("%w: máximo %d héroes", ErrSelectionFull, MaxSelection)
	}
	s.names = append(s.names, resolved)
	s.set[resolved] = struct{}{}
	return nil
}

func (s *Selection) Remove(name string) {
	if _, ok := s.set[name]; !ok {
		return
	}
	delete(s.set, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

func (s *Selection) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *Selection) Len() int { return len(s.names) }

func (s *Selection) Contains(name string) bool {
	_, ok := s.set[name]
	return ok
}
