package vets

import "vetclinic-reception/internal/events"

const (
	TopicAdded   events.Topic = "vet_added"
	TopicUpdated events.Topic = "vet_updated"
	TopicDeleted events.Topic = "vet_deleted"
)

type Added struct{ Veterinarian Veterinarian }

func (Added) Topic() events.Topic { return TopicAdded }

type Updated struct{ Veterinarian Veterinarian }

func (Updated) Topic() events.Topic { return TopicUpdated }

type Deleted struct{ ID int }

func (Deleted) Topic() events.Topic { return TopicDeleted }
