package labeler

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"dota-draft-tools/draft"
	"dota-draft-tools/logging"
)

const (
	// AutosaveEvery guarda (con backup) cada N cambios
	AutosaveEvery = 10
	queueSeed     = 0xAD2025
)

// Store es donde viven las etiquetas; storage.RoleStore lo implementa
type Store interface {
	Get(name string) (string, bool)
	Set(name, label string)
	Delete(name string)
	Len() int
	Save(backup bool) error
}

type Action int

const (
	ActionUnknown Action = iota
	ActionLabel
	ActionSkip
	ActionUndo
	ActionQuit
	ActionHelp
)

// ParseKey traduce una tecla; el rol solo aplica a ActionLabel
func ParseKey(key string) (Action, draft.Role) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "c":
		return ActionLabel, draft.RoleCarry
	case "s":
		return ActionLabel, draft.RoleSupport
	case "b":
		return ActionLabel, draft.RoleBoth
	case "k", "":
		return ActionSkip, draft.RoleNone
	case "u":
		return ActionUndo, draft.RoleNone
	case "q":
		return ActionQuit, draft.RoleNone
	case "?", "h":
		return ActionHelp, draft.RoleNone
	}
	return ActionUnknown, draft.RoleNone
}

// BuildQueue pone primero las habilidades sin etiqueta, mezcladas con semilla fija,
// y después las ya etiquetadas en orden alfabético.
func BuildQueue(names []string, store Store) []string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	var unlabeled, labeled []string
	for _, n := range sorted {
		if _, ok := store.Get(n); ok {
			labeled = append(labeled, n)
		} else {
			unlabeled = append(unlabeled, n)
		}
	}
	rng := rand.New(rand.NewSource(queueSeed))
	rng.Shuffle(len(unlabeled), func(i, j int) { unlabeled[i], unlabeled[j] = unlabeled[j], unlabeled[i] })
	return append(unlabeled, labeled...)
}

type change struct {
	name     string
	previous string
	had      bool
}

// Result describe qué pasó al aplicar una tecla
type Result struct {
	Action  Action
	Message string
	Quit    bool
}

// Session es la máquina de estados del etiquetado: una cola, un cursor, el historial
// para deshacer y el contador de cambios para el autosave.
type Session struct {
	store   Store
	queue   []string
	idx     int
	history []change
	changes int
}

func NewSession(store Store, names []string) *Session {
	return &Session{store: store, queue: BuildQueue(names, store)}
}

func (s *Session) Total() int { return len(s.queue) }

func (s *Session) Labeled() int { return s.store.Len() }

func (s *Session) Done() bool { return s.idx >= len(s.queue) }

// Current devuelve la habilidad actual y su etiqueta si tiene
func (s *Session) Current() (name, label string) {
	if s.Done() {
		return "", ""
	}
	name = s.queue[s.idx]
	label, _ = s.store.Get(name)
	return name, label
}

func (s *Session) Changes() int { return s.changes }

// Apply procesa una tecla sobre la habilidad actual
func (s *Session) Apply(key string) (Result, error) {
	action, role := ParseKey(key)
	switch action {
	case ActionHelp:
		return Result{Action: action, Message: HelpText}, nil
	case ActionQuit:
		if err := s.store.Save(true); err != nil {
			return Result{}, err
		}
		return Result{Action: action, Quit: true, Message: "Guardado."}, nil
	case ActionSkip:
		s.idx++
		return Result{Action: action}, nil
	case ActionUndo:
		return s.undo(), nil
	case ActionLabel:
		return s.label(role)
	}
	return Result{Action: action, Message: "Tecla no reconocida. Presiona ? para ayuda."}, nil
}

func (s *Session) undo() Result {
	if len(s.history) == 0 {
		return Result{Action: ActionUndo, Message: "Nada para deshacer."}
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	if last.had {
		s.store.Set(last.name, last.previous)
	} else {
		s.store.Delete(last.name)
	}
	prev := last.previous
	if !last.had {
		prev = "(sin etiqueta)"
	}
	return Result{Action: ActionUndo, Message: fmt.Sprintf("Deshecho: %s -> %s", last.name, prev)}
}

func (s *Session) label(role draft.Role) (Result, error) {
	name, _ := s.Current()
	if name == "" {
		return Result{Action: ActionLabel}, nil
	}
	prev, had := s.store.Get(name)
	res := Result{Action: ActionLabel}
	if !had || prev != string(role) {
		s.history = append(s.history, change{name: name, previous: prev, had: had})
		s.store.Set(name, string(role))
		s.changes++
		if s.changes%AutosaveEvery == 0 {
			if err := s.store.Save(true); err != nil {
				return Result{}, err
			}
			logging.Get().WithField("cambios", s.changes).Info("autosave de etiquetas")
			res.Message = fmt.Sprintf("(autosave tras %d cambios)", s.changes)
		}
	}
	s.idx++
	return res, nil
}

// Finish guarda al terminar la cola
func (s *Session) Finish() error {
	return s.store.Save(true)
}

const HelpText = `Ayuda:
  c = carry
  s = support
  b = both (flex)
  k = saltar sin cambiar la etiqueta
  u = deshacer el último cambio de esta sesión
  q = guardar y salir`
