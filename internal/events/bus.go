package events

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"vetclinic-reception/internal/platform/logger"
)

// Handler recibe todos los eventos del tópico al que fue suscrito.
type Handler func(Event)

// Subscription identifica una suscripción concreta. Suscribir dos veces el
// mismo handler produce dos tokens distintos y dos invocaciones por emisión.
type Subscription struct {
	topic Topic
	id    uint64
}

type subscriber struct {
	id uint64
	fn Handler
}

// Bus despacha eventos de forma síncrona, en orden de suscripción.
// Un handler que entra en pánico se registra y se aísla: los handlers
// restantes reciben el evento igualmente.
type Bus struct {
	log logger.Logger
	now func() time.Time

	mu       sync.Mutex
	nextID   uint64
	handlers map[Topic][]subscriber
	history  []Entry
}

func NewBus(log logger.Logger) *Bus {
	if log == nil {
		log = logger.Nop()
	}
	return &Bus{
		log:      log,
		now:      time.Now,
		handlers: make(map[Topic][]subscriber),
	}
}

// Subscribe registra un handler bajo un tópico y devuelve su token.
func (b *Bus) Subscribe(topic Topic, fn Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[topic] = append(b.handlers[topic], subscriber{id: b.nextID, fn: fn})
	return Subscription{topic: topic, id: b.nextID}
}

// Unsubscribe elimina la suscripción si existe; si no, no hace nada.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[sub.topic]
	for i, s := range subs {
		if s.id == sub.id {
			b.handlers[sub.topic] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Emit registra el evento en el historial y lo entrega a cada suscriptor
// del tópico, de forma síncrona y en orden de suscripción.
func (b *Bus) Emit(ev Event) {
	topic := ev.Topic()

	b.mu.Lock()
	b.history = append(b.history, Entry{
		ID:    uuid.NewString(),
		Topic: topic,
		Event: ev,
		At:    b.now(),
	})
	subs := slices.Clone(b.handlers[topic])
	b.mu.Unlock()

	for _, s := range subs {
		b.invoke(topic, s, ev)
	}
}

func (b *Bus) invoke(topic Topic, s subscriber, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("event handler panicked", map[string]any{
				"topic": string(topic),
				"panic": fmt.Sprint(r),
			})
		}
	}()
	s.fn(ev)
}

// History devuelve el historial completo, o solo las entradas de los
// tópicos indicados.
func (b *Bus) History(topics ...Topic) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(topics) == 0 {
		return slices.Clone(b.history)
	}

	out := make([]Entry, 0)
	for _, e := range b.history {
		if slices.Contains(topics, e.Topic) {
			out = append(out, e)
		}
	}
	return out
}

func (b *Bus) ClearHistory() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history = nil
}

// On suscribe un handler tipado al tópico del evento E. Eventos del mismo
// tópico con otro tipo concreto se ignoran.
func On[E Event](b *Bus, fn func(E)) Subscription {
	var zero E
	return b.Subscribe(zero.Topic(), func(ev Event) {
		if e, ok := ev.(E); ok {
			fn(e)
		}
	})
}
