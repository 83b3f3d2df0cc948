// Package state contiene el estado compartido de interfaz y el andamiaje
// de sincronización (cache y cambios pendientes) y deshacer/rehacer.
package state

import (
	"maps"
	"slices"
	"sync"
	"time"

	"vetclinic-reception/internal/events"
)

// Claves conocidas del estado de interfaz.
const (
	KeyCurrentView         = "current_view"
	KeySelectedClient      = "selected_client"
	KeySelectedPet         = "selected_pet"
	KeySelectedAppointment = "selected_appointment"
	KeyIsLoading           = "is_loading"
	KeySearchTerm          = "search_term"
	KeyUserName            = "user_name"
	KeyUserRole            = "user_role"
)

const TopicChanged events.Topic = "state_changed"

// Changed se emite en cada escritura de estado no silenciosa.
type Changed struct {
	Key      string
	Value    any
	OldValue any
}

func (Changed) Topic() events.Topic { return TopicChanged }

// ChangeRecord es una entrada del historial de cambios de estado.
type ChangeRecord struct {
	Key      string
	OldValue any
	NewValue any
	At       time.Time
}

// Manager guarda el estado de interfaz por clave y emite Changed en cada
// escritura. El historial de cambios es solo en memoria.
type Manager struct {
	bus *events.Bus
	now func() time.Time

	mu      sync.RWMutex
	values  map[string]any
	history []ChangeRecord
}

func NewManager(bus *events.Bus) *Manager {
	return &Manager{
		bus:    bus,
		now:    time.Now,
		values: defaults(),
	}
}

func defaults() map[string]any {
	return map[string]any{
		KeyCurrentView:         "dashboard",
		KeySelectedClient:      nil,
		KeySelectedPet:         nil,
		KeySelectedAppointment: nil,
		KeyIsLoading:           false,
		KeySearchTerm:          "",
		KeyUserName:            "Recepcionista",
		KeyUserRole:            "recepcionista",
	}
}

// Get devuelve el valor de la clave, o nil si no existe.
func (m *Manager) Get(key string) any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key]
}

func (m *Manager) Lookup(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set escribe la clave y emite Changed.
func (m *Manager) Set(key string, value any) {
	m.set(key, value, true)
}

// SetSilent escribe la clave sin emitir evento.
func (m *Manager) SetSilent(key string, value any) {
	m.set(key, value, false)
}

func (m *Manager) set(key string, value any, emit bool) {
	m.mu.Lock()
	old := m.values[key]
	m.values[key] = value
	m.history = append(m.history, ChangeRecord{
		Key:      key,
		OldValue: old,
		NewValue: value,
		At:       m.now(),
	})
	m.mu.Unlock()

	if emit {
		m.bus.Emit(Changed{Key: key, Value: value, OldValue: old})
	}
}

// Update escribe varias claves, emitiendo Changed por cada una.
func (m *Manager) Update(values map[string]any) {
	for k, v := range values {
		m.Set(k, v)
	}
}

// All devuelve una copia del estado completo.
func (m *Manager) All() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.values)
}

// History devuelve una copia del historial de cambios.
func (m *Manager) History() []ChangeRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.history)
}

// Reset vuelve a los valores iniciales y limpia el historial. No emite.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = defaults()
	m.history = nil
}
