package pets

import "vetclinic-reception/internal/events"

const (
	TopicAdded    events.Topic = "pet_added"
	TopicUpdated  events.Topic = "pet_updated"
	TopicDeleted  events.Topic = "pet_deleted"
	TopicSelected events.Topic = "pet_selected"
)

type Added struct{ Pet Pet }

func (Added) Topic() events.Topic { return TopicAdded }

type Updated struct{ Pet Pet }

func (Updated) Topic() events.Topic { return TopicUpdated }

type Deleted struct{ ID int }

func (Deleted) Topic() events.Topic { return TopicDeleted }

type Selected struct{ ID int }

func (Selected) Topic() events.Topic { return TopicSelected }
