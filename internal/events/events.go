// Package events implementa el bus de eventos de dominio de la aplicación:
// publicación síncrona, suscripciones con token y un historial en memoria.
//
// Los eventos son un conjunto cerrado de tipos concretos (cada dominio
// declara los suyos); el bus solo conoce la interfaz Event.
package events

import "time"

// Topic identifica un canal de publicación.
type Topic string

// Tópicos de interfaz que no pertenecen a ningún dominio concreto.
const (
	TopicViewChanged Topic = "view_changed"
)

// Event es una notificación de dominio con carga tipada.
type Event interface {
	Topic() Topic
}

// ViewChanged señala un cambio de vista en la navegación principal.
type ViewChanged struct {
	From string
	To   string
}

func (ViewChanged) Topic() Topic { return TopicViewChanged }

// Entry es un registro del historial del bus.
type Entry struct {
	ID    string
	Topic Topic
	Event Event
	At    time.Time
}
