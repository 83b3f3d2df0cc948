package clients

import (
	"errors"
	"slices"
	"sync"

	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/platform/logger"
)

var ErrNotFound = errors.New("client not found")

// Store mantiene la lista canónica de clientes. Su única superficie de
// mutación son los eventos del bus: Added, Updated y Deleted. Las vistas
// leen mediante Snapshot y nunca tocan la lista directamente.
type Store struct {
	mu      sync.RWMutex
	records []Client
	log     logger.Logger
}

func NewStore(bus *events.Bus, seed []Client, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{records: slices.Clone(seed), log: log}

	events.On(bus, s.onAdded)
	events.On(bus, s.onUpdated)
	events.On(bus, s.onDeleted)

	return s
}

func (s *Store) onAdded(ev Added) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := ev.Client
	if c.ID == 0 {
		c.ID = s.nextIDLocked()
	}
	s.records = append(s.records, c)
	s.log.Debug("client added", map[string]any{"id": c.ID})
}

func (s *Store) onUpdated(ev Updated) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.records {
		if c.ID == ev.Client.ID {
			s.records[i] = ev.Client
			s.log.Debug("client updated", map[string]any{"id": c.ID})
			return
		}
	}
	// ID desconocido: fusión por ID sin coincidencia, no se hace nada
}

func (s *Store) onDeleted(ev Deleted) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = slices.DeleteFunc(s.records, func(c Client) bool {
		return c.ID == ev.ID
	})
	s.log.Debug("client deleted", map[string]any{"id": ev.ID})
}

// Snapshot devuelve una copia de la lista completa, en orden de inserción.
func (s *Store) Snapshot() []Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

func (s *Store) Get(id int) (Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.records {
		if c.ID == id {
			return c, nil
		}
	}
	return Client{}, ErrNotFound
}

// Active devuelve los clientes con estado activo (para poblar combos).
func (s *Store) Active() []Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Client, 0)
	for _, c := range s.records {
		if c.Status == StatusActive {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// NextID calcula max(existentes)+1, o 1 con la colección vacía.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextIDLocked()
}

func (s *Store) nextIDLocked() int {
	next := 1
	for _, c := range s.records {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}

// Reset reemplaza la lista completa; lo usa el contexto de aplicación
// para volver al dataset inicial.
func (s *Store) Reset(records []Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = slices.Clone(records)
}
