package clients

import "vetclinic-reception/internal/events"

const (
	TopicAdded    events.Topic = "client_added"
	TopicUpdated  events.Topic = "client_updated"
	TopicDeleted  events.Topic = "client_deleted"
	TopicSelected events.Topic = "client_selected"
)

// Added se emite al confirmar el formulario de alta. Si Client.ID es cero,
// el store le asigna el siguiente identificador al aplicarlo.
type Added struct{ Client Client }

func (Added) Topic() events.Topic { return TopicAdded }

// Updated se emite al confirmar una edición; se fusiona por ID.
type Updated struct{ Client Client }

func (Updated) Topic() events.Topic { return TopicUpdated }

// Deleted lleva solo el identificador del registro eliminado.
type Deleted struct{ ID int }

func (Deleted) Topic() events.Topic { return TopicDeleted }

// Selected señala la selección de un cliente en alguna vista.
type Selected struct{ ID int }

func (Selected) Topic() events.Topic { return TopicSelected }
