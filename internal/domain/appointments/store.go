package appointments

import (
	"errors"
	"slices"
	"sync"

	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/platform/logger"
)

var ErrNotFound = errors.New("appointment not found")

// Store mantiene la lista canónica de citas, mutada solo vía eventos.
// El reordenamiento manual de la vista de citas NO pasa por aquí: opera
// sobre la proyección filtrada de la vista y se pierde al refrescar.
type Store struct {
	mu      sync.RWMutex
	records []Appointment
	log     logger.Logger
}

func NewStore(bus *events.Bus, seed []Appointment, log logger.Logger) *Store {
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

	a := ev.Appointment
	if a.ID == 0 {
		a.ID = s.nextIDLocked()
	}
	s.records = append(s.records, a)
	s.log.Debug("appointment added", map[string]any{"id": a.ID})
}

func (s *Store) onUpdated(ev Updated) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.records {
		if a.ID == ev.Appointment.ID {
			s.records[i] = ev.Appointment
			s.log.Debug("appointment updated", map[string]any{"id": a.ID})
			return
		}
	}
}

func (s *Store) onDeleted(ev Deleted) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = slices.DeleteFunc(s.records, func(a Appointment) bool {
		return a.ID == ev.ID
	})
	s.log.Debug("appointment deleted", map[string]any{"id": ev.ID})
}

func (s *Store) Snapshot() []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

func (s *Store) Get(id int) (Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.records {
		if a.ID == id {
			return a, nil
		}
	}
	return Appointment{}, ErrNotFound
}

// ByDate devuelve las citas de una fecha concreta (YYYY-MM-DD).
func (s *Store) ByDate(date string) []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Appointment, 0)
	for _, a := range s.records {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}

// ByPet devuelve las citas de una mascota.
func (s *Store) ByPet(petID int) []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Appointment, 0)
	for _, a := range s.records {
		if a.PetID == petID {
			out = append(out, a)
		}
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
	for _, a := range s.records {
		if a.ID >= next {
			next = a.ID + 1
		}
	}
	return next
}

func (s *Store) Reset(records []Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = slices.Clone(records)
}
