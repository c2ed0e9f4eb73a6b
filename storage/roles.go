package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"dota-draft-tools/logging"
)

const (
	RolesFile  = "ability_roles.json"
	backupsDir = "backups"
)

type RolesMeta struct {
	Source     *Source  `json:"source,omitempty"`
	HSCachedAt string   `json:"hs_cached_at,omitempty"`
	UpdatedAt  string   `json:"updated_at,omitempty"`
	Roles      []string `json:"roles,omitempty"`
}

type rolesDoc struct {
	Meta   RolesMeta         `json:"meta"`
	Labels map[string]string `json:"labels"`
}

// RoleStore guarda las etiquetas carry/support/both por nombre de habilidad
type RoleStore struct {
	mu     sync.RWMutex
	meta   RolesMeta
	labels map[string]string
	file   string
	backup string
	now    func() time.Time
}

// OpenRoleStore carga cache/ability_roles.json. Es un insumo opcional:
// si falta o está corrupto se arranca vacío.
func OpenRoleStore(cacheDir string) *RoleStore {
	s := &RoleStore{
		labels: make(map[string]string),
		file:   filepath.Join(cacheDir, RolesFile),
		backup: filepath.Join(cacheDir, backupsDir),
		now:    time.Now,
	}

	data, err := os.ReadFile(s.file)
	if err != nil {
		return s
	}
	var doc rolesDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Get().Warnf("%s corrupto, se ignora: %v", s.file, err)
		return s
	}
	s.meta = doc.Meta
	if doc.Labels != nil {
		s.labels = doc.Labels
	}
	return s
}

func (s *RoleStore) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	label, ok := s.labels[name]
	return label, ok
}

func (s *RoleStore) Set(name, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels[name] = label
	s.meta.UpdatedAt = s.timestamp()
}

func (s *RoleStore) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.labels, name)
	s.meta.UpdatedAt = s.timestamp()
}

// Labels devuelve una copia de las etiquetas
func (s *RoleStore) Labels() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]string, len(s.labels))
	for k, v := range s.labels {
		result[k] = v
	}
	return result
}

func (s *RoleStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.labels)
}

// SetMeta registra de qué cache HS salen las etiquetas
func (s *RoleStore) SetMeta(source Source, hsCachedAt string, roles []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta = RolesMeta{
		Source:     &source,
		HSCachedAt: hsCachedAt,
		UpdatedAt:  s.timestamp(),
		Roles:      roles,
	}
}

func (s *RoleStore) timestamp() string {
	return s.now().UTC().Format("2006-01-02T15:04:05Z")
}

// Save escribe el archivo de forma atómica y, si backup, deja una copia con timestamp
func (s *RoleStore) Save(backup bool) error {
	s.mu.RLock()
	doc := rolesDoc{Meta: s.meta, Labels: s.labels}
	err := WriteJSONAtomic(s.file, doc)
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	if !backup {
		return nil
	}

	if err := os.MkdirAll(s.backup, 0755); err != nil {
		return fmt.Errorf("error creando directorio de backups: %w", err)
	}
	data, err := os.ReadFile(s.file)
	if err != nil {
		return fmt.Errorf("error leyendo %s para backup: %w", s.file, err)
	}
	name := fmt.Sprintf("ability_roles_%s.json", s.now().Format("20060102-150405"))
	if err := os.WriteFile(filepath.Join(s.backup, name), data, 0644); err != nil {
		return fmt.Errorf("error guardando backup: %w", err)
	}
	return nil
}

// Unlabeled devuelve los nombres de names sin etiqueta, ordenados
func (s *RoleStore) Unlabeled(names []string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for _, n := range names {
		if _, ok := s.labels[n]; !ok {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
