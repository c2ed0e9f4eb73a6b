package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// ErrMissingCache indica que falta un archivo de cache obligatorio
var ErrMissingCache = errors.New("falta el archivo de cache")

// ReadJSON decodifica path en v. Si no existe devuelve un error que envuelve ErrMissingCache.
func ReadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingCache, path)
		}
		return fmt.Errorf("error leyendo %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error decodificando %s: %w", path, err)
	}
	return nil
}

// WriteJSONAtomic escribe en un .tmp y renombra, para no dejar archivos a medias
func WriteJSONAtomic(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creando directorio %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error codificando %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("error guardando %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("error renombrando %s: %w", tmp, err)
	}
	return nil
}

// WriteStreamAtomic copia r a path pasando por un .tmp
func WriteStreamAtomic(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creando directorio %s: %w", filepath.Dir(path), err)
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("error creando %s: %w", tmp, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("error escribiendo %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error cerrando %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("error renombrando %s: %w", tmp, err)
	}
	return nil
}

// APICache guarda respuestas de OpenDota como cache/<name>.json.
// Refresh fuerza a ignorar lo cacheado al leer (pero se sigue escribiendo).
type APICache struct {
	mu      sync.RWMutex
	dir     string
	Refresh bool
}

func NewAPICache(dir string, refresh bool) (*APICache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creando directorio %s: %w", dir, err)
	}
	return &APICache{dir: dir, Refresh: refresh}, nil
}

func (c *APICache) path(name string) string {
	return filepath.Join(c.dir, name+".json")
}

// Load devuelve false si no hay cache utilizable (no existe, está corrupta, es null o Refresh)
func (c *APICache) Load(name string, v interface{}) bool {
	if c.Refresh {
		return false
	}
	c.mu.RLock()
	data, err := os.ReadFile(c.path(name))
	c.mu.RUnlock()
	if err != nil {
		return false
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func (c *APICache) Save(name string, v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return WriteJSONAtomic(c.path(name), v)
}

// Fetch devuelve lo cacheado o llama a fetch y guarda el resultado
func (c *APICache) Fetch(name string, v interface{}, fetch func() error) error {
	if c.Load(name, v) {
		return nil
	}
	if err := fetch(); err != nil {
		return err
	}
	return c.Save(name, v)
}
