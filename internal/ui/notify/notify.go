// Package notify implementa las notificaciones transitorias (toasts):
// se apilan con una expiración fija y se descartan solas al consultarlas.
package notify

import (
	"slices"
	"sync"
	"time"

	"vetclinic-reception/internal/events"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

const Topic events.Topic = "notification"

// Notification es un toast emitido. También viaja por el bus para que
// cualquier vista abierta pueda mostrarlo.
type Notification struct {
	Level     Level
	Message   string
	At        time.Time
	ExpiresAt time.Time
}

func (Notification) Topic() events.Topic { return Topic }

// Center acumula los toasts vigentes. La duración por defecto es de
// 3 segundos.
type Center struct {
	bus *events.Bus
	ttl time.Duration
	now func() time.Time

	mu     sync.Mutex
	active []Notification
}

func NewCenter(bus *events.Bus, ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	return &Center{bus: bus, ttl: ttl, now: time.Now}
}

func (c *Center) Success(msg string) { c.push(LevelSuccess, msg) }
func (c *Center) Error(msg string)   { c.push(LevelError, msg) }
func (c *Center) Warning(msg string) { c.push(LevelWarning, msg) }
func (c *Center) Info(msg string)    { c.push(LevelInfo, msg) }

func (c *Center) push(level Level, msg string) {
	now := c.now()
	n := Notification{
		Level:     level,
		Message:   msg,
		At:        now,
		ExpiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	c.active = append(c.active, n)
	c.mu.Unlock()

	if c.bus != nil {
		c.bus.Emit(n)
	}
}

// Active poda los toasts expirados y devuelve los vigentes.
func (c *Center) Active() []Notification {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.active = slices.DeleteFunc(c.active, func(n Notification) bool {
		return !now.Before(n.ExpiresAt)
	})
	return slices.Clone(c.active)
}
