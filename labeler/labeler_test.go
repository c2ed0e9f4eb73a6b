package labeler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dota-draft-tools/draft"
	"dota-draft-tools/storage"
)

type memStore struct {
	labels map[string]string
	saves  int
}

func newMemStore(labels map[string]string) *memStore {
	if labels == nil {
		labels = map[string]string{}
	}
	return &memStore{labels: labels}
}

func (m *memStore) Get(name string) (string, bool) {
	l, ok := m.labels[name]
	return l, ok
}
func (m *memStore) Set(name, label string) { m.labels[name] = label }
func (m *memStore) Delete(name string)     { delete(m.labels, name) }
func (m *memStore) Len() int               { return len(m.labels) }
func (m *memStore) Save(bool) error        { m.saves++; return nil }

func describe(name string) draft.AbilityInfo { return draft.AbilityInfo{Name: name} }

func TestParseKey(t *testing.T) {
	tests := []struct {
		key    string
		action Action
		role   draft.Role
	}{
		{"c", ActionLabel, draft.RoleCarry},
		{" S ", ActionLabel, draft.RoleSupport},
		{"b", ActionLabel, draft.RoleBoth},
		{"", ActionSkip, draft.RoleNone},
		{"k", ActionSkip, draft.RoleNone},
		{"u", ActionUndo, draft.RoleNone},
		{"q", ActionQuit, draft.RoleNone},
		{"h", ActionHelp, draft.RoleNone},
		{"?", ActionHelp, draft.RoleNone},
		{"x", ActionUnknown, draft.RoleNone},
	}
	for _, tt := range tests {
		action, role := ParseKey(tt.key)
		assert.Equal(t, tt.action, action, tt.key)
		assert.Equal(t, tt.role, role, tt.key)
	}
}

func TestBuildQueue_UnlabeledFirstAndDeterministic(t *testing.T) {
	names := []string{"e", "d", "c", "b", "a", "z"}
	store := newMemStore(map[string]string{"z": "carry", "a": "both"})

	q1 := BuildQueue(names, store)
	q2 := BuildQueue([]string{"a", "b", "c", "d", "e", "z"}, store)
	assert.Equal(t, q1, q2)
	assert.ElementsMatch(t, []string{"b", "c", "d", "e"}, q1[:4])
	assert.Equal(t, []string{"a", "z"}, q1[4:])
}

func TestSession_LabelUndoSkip(t *testing.T) {
	store := newMemStore(map[string]string{"Hex": "carry"})
	s := NewSession(store, []string{"Hex", "Bash"})

	name, _ := s.Current()
	assert.Equal(t, "Bash", name)

	_, err := s.Apply("c")
	require.NoError(t, err)
	name, label := s.Current()
	assert.Equal(t, "Hex", name)
	assert.Equal(t, "carry", label)

	_, err = s.Apply("s")
	require.NoError(t, err)
	assert.Equal(t, "support", store.labels["Hex"])
	assert.True(t, s.Done())

	res, err := s.Apply("u")
	require.NoError(t, err)
	assert.Contains(t, res.Message, "Hex -> carry")
	assert.Equal(t, "carry", store.labels["Hex"])

	_, err = s.Apply("u")
	require.NoError(t, err)
	_, ok := store.labels["Bash"]
	assert.False(t, ok)

	res, err = s.Apply("u")
	require.NoError(t, err)
	assert.Equal(t, "Nada para deshacer.", res.Message)
	assert.Equal(t, 2, s.Changes())
}

func TestSession_SameLabelIsNotAChange(t *testing.T) {
	store := newMemStore(map[string]string{"Hex": "support"})
	s := NewSession(store, []string{"Hex"})
	_, err := s.Apply("s")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Changes())
	assert.True(t, s.Done())
}

func TestSession_Autosave(t *testing.T) {
	var names []string
	for i := 0; i < 25; i++ {
		names = append(names, string(rune('A'+i)))
	}
	store := newMemStore(nil)
	s := NewSession(store, names)

	for i := 0; i < 20; i++ {
		_, err := s.Apply("b")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, store.saves)
}

func TestRun_EOFSavesAndQuits(t *testing.T) {
	store := newMemStore(nil)
	s := NewSession(store, []string{"Hex", "Bash", "Overpower"})

	var out bytes.Buffer
	require.NoError(t, Run(s, strings.NewReader("c\nx\n?\n"), &out, describe))

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 1, store.saves)
	assert.Contains(t, out.String(), "Tecla no reconocida")
	assert.Contains(t, out.String(), "Ayuda:")
	assert.Contains(t, out.String(), "Guardado.")
}

func TestRun_FinishesQueue(t *testing.T) {
	store := newMemStore(nil)
	s := NewSession(store, []string{"Hex", "Bash"})

	var out bytes.Buffer
	require.NoError(t, Run(s, strings.NewReader("s\nk\n"), &out, describe))
	assert.Equal(t, 1, store.Len())
	assert.Contains(t, out.String(), "1/2 habilidades etiquetadas")
}

func TestRun_WithRoleStore(t *testing.T) {
	dir := t.TempDir()
	store := storage.OpenRoleStore(dir)
	s := NewSession(store, []string{"Hex"})

	var out bytes.Buffer
	require.NoError(t, Run(s, strings.NewReader("b\n"), &out, describe))

	reopened := storage.OpenRoleStore(dir)
	label, ok := reopened.Get("Hex")
	assert.True(t, ok)
	assert.Equal(t, "both", label)
}

func TestRun_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(NewSession(newMemStore(nil), nil), strings.NewReader(""), &out, describe))
	assert.Contains(t, out.String(), "No hay habilidades")
}

func TestRun_ModelCard(t *testing.T) {
	s := NewSession(newMemStore(nil), []string{"Ursa"})
	describeModel := func(name string) draft.AbilityInfo {
		return draft.AbilityInfo{Name: name, Kind: draft.KindModel, Heroes: []string{name}}
	}

	var out bytes.Buffer
	require.NoError(t, Run(s, strings.NewReader("c\n"), &out, describeModel))
	assert.Contains(t, out.String(), "Modelo de héroe: Ursa")
	assert.NotContains(t, out.String(), "Habilidad: Ursa")
}
