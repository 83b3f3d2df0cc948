package pets

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/platform/logger"
)

var ErrNotFound = errors.New("pet not found")

// Store mantiene la lista canónica de mascotas, mutada solo vía eventos.
type Store struct {
	mu      sync.RWMutex
	records []Pet
	log     logger.Logger
}

func NewStore(bus *events.Bus, seed []Pet, log logger.Logger) *Store {
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

	p := ev.Pet
	if p.ID == 0 {
		p.ID = s.nextIDLocked()
	}
	s.records = append(s.records, p)
	s.log.Debug("pet added", map[string]any{"id": p.ID})
}

func (s *Store) onUpdated(ev Updated) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.records {
		if p.ID == ev.Pet.ID {
			s.records[i] = ev.Pet
			s.log.Debug("pet updated", map[string]any{"id": p.ID})
			return
		}
	}
}

func (s *Store) onDeleted(ev Deleted) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = slices.DeleteFunc(s.records, func(p Pet) bool {
		return p.ID == ev.ID
	})
	s.log.Debug("pet deleted", map[string]any{"id": ev.ID})
}

func (s *Store) Snapshot() []Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

func (s *Store) Get(id int) (Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.records {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

// ByOwner devuelve las mascotas de un cliente, en orden de inserción.
func (s *Store) ByOwner(ownerID int) []Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Pet, 0)
	for _, p := range s.records {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) Active() []Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Pet, 0)
	for _, p := range s.records {
		if p.Status == StatusActive {
			out = append(out, p)
		}
	}
	return out
}

// Options etiqueta las mascotas activas para el combo del formulario de
// citas, con el formato "Nombre (ID)" que luego se resuelve de vuelta.
func (s *Store) Options() []string {
	active := s.Active()
	out := make([]string, 0, len(active))
	for _, p := range active {
		out = append(out, fmt.Sprintf("%s (%d)", p.Name, p.ID))
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextIDLocked()
}

func (s *Store) nextIDLocked() int {
	next := 1
	for _, p := range s.records {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

func (s *Store) Reset(records []Pet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = slices.Clone(records)
}
