package vets

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/platform/logger"
)

var ErrNotFound = errors.New("veterinarian not found")

// Store mantiene la lista canónica de veterinarios, mutada solo vía eventos.
type Store struct {
	mu      sync.RWMutex
	records []Veterinarian
	log     logger.Logger
}

func NewStore(bus *events.Bus, seed []Veterinarian, log logger.Logger) *Store {
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

	v := ev.Veterinarian
	if v.ID == 0 {
		v.ID = s.nextIDLocked()
	}
	s.records = append(s.records, v)
	s.log.Debug("vet added", map[string]any{"id": v.ID})
}

func (s *Store) onUpdated(ev Updated) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.records {
		if v.ID == ev.Veterinarian.ID {
			s.records[i] = ev.Veterinarian
			s.log.Debug("vet updated", map[string]any{"id": v.ID})
			return
		}
	}
}

func (s *Store) onDeleted(ev Deleted) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = slices.DeleteFunc(s.records, func(v Veterinarian) bool {
		return v.ID == ev.ID
	})
	s.log.Debug("vet deleted", map[string]any{"id": ev.ID})
}

func (s *Store) Snapshot() []Veterinarian {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

func (s *Store) Get(id int) (Veterinarian, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.records {
		if v.ID == id {
			return v, nil
		}
	}
	return Veterinarian{}, ErrNotFound
}

func (s *Store) Active() []Veterinarian {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Veterinarian, 0)
	for _, v := range s.records {
		if v.Status == StatusActive {
			out = append(out, v)
		}
	}
	return out
}

// Options etiqueta los veterinarios activos para el combo del formulario
// de citas: "Dr. Nombre Apellidos - Especialidad".
func (s *Store) Options() []string {
	active := s.Active()
	out := make([]string, 0, len(active))
	for _, v := range active {
		out = append(out, fmt.Sprintf("Dr. %s - %s", v.FullName(), v.Specialty))
	}
	return out
}

// FindByLabel resuelve la opción elegida en el combo de vuelta al registro,
// buscando el veterinario cuyo nombre completo aparece en la etiqueta.
// Devuelve ErrNotFound si ninguna coincide (error de lookup, no de validación).
func (s *Store) FindByLabel(label string) (Veterinarian, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.records {
		if strings.Contains(label, v.FullName()) {
			return v, nil
		}
	}
	return Veterinarian{}, ErrNotFound
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
	for _, v := range s.records {
		if v.ID >= next {
			next = v.ID + 1
		}
	}
	return next
}

func (s *Store) Reset(records []Veterinarian) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = slices.Clone(records)
}
