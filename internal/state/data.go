package state

import (
	"slices"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"vetclinic-reception/internal/events"
)

const TopicDataChanged events.Topic = "data_changed"

// DataChanged se emite al encolar un cambio pendiente.
type DataChanged struct{ Change Change }

func (DataChanged) Topic() events.Topic { return TopicDataChanged }

// Change describe una mutación pendiente de sincronizar.
type Change struct {
	Entity  string
	Op      string
	Payload any
	At      time.Time
}

// Data es el andamiaje de cache y cambios pendientes previsto para una
// futura sincronización. Ninguna operación CRUD lo usa hoy: está
// construido y probado, pero fuera del contrato de las vistas.
type Data struct {
	bus   *events.Bus
	cache *lru.Cache[string, any]
	now   func() time.Time

	mu      sync.Mutex
	pending []Change
}

func NewData(bus *events.Bus, cacheSize int) (*Data, error) {
	cache, err := lru.New[string, any](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Data{bus: bus, cache: cache, now: time.Now}, nil
}

func (d *Data) GetCached(key string) (any, bool) {
	return d.cache.Get(key)
}

func (d *Data) SetCache(key string, value any) {
	d.cache.Add(key, value)
}

// InvalidateCache elimina las claves dadas; sin argumentos vacía todo.
func (d *Data) InvalidateCache(keys ...string) {
	if len(keys) == 0 {
		d.cache.Purge()
		return
	}
	for _, k := range keys {
		d.cache.Remove(k)
	}
}

func (d *Data) CacheLen() int {
	return d.cache.Len()
}

// AddPendingChange encola un cambio y emite DataChanged.
func (d *Data) AddPendingChange(ch Change) {
	if ch.At.IsZero() {
		ch.At = d.now()
	}

	d.mu.Lock()
	d.pending = append(d.pending, ch)
	d.mu.Unlock()

	d.bus.Emit(DataChanged{Change: ch})
}

func (d *Data) PendingChanges() []Change {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.pending)
}

func (d *Data) ClearPendingChanges() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = nil
}
