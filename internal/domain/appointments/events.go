package appointments

import "vetclinic-reception/internal/events"

const (
	TopicAdded    events.Topic = "appointment_added"
	TopicUpdated  events.Topic = "appointment_updated"
	TopicDeleted  events.Topic = "appointment_deleted"
	TopicSelected events.Topic = "appointment_selected"
)

type Added struct{ Appointment Appointment }

func (Added) Topic() events.Topic { return TopicAdded }

type Updated struct{ Appointment Appointment }

func (Updated) Topic() events.Topic { return TopicUpdated }

type Deleted struct{ ID int }

func (Deleted) Topic() events.Topic { return TopicDeleted }

type Selected struct{ ID int }

func (Selected) Topic() events.Topic { return TopicSelected }
