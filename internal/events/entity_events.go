package events

import "inspectra/internal/entities"

// Lifecycle events published after a command has been applied. Payloads are
// snapshots, safe to hand to listeners.

type UnitCreatedEvent struct {
	Unit entities.Unit
}

func (e UnitCreatedEvent) Name() string { return "unit.created" }

type UnitRemovedEvent struct {
	ID string
	// Workshops removed by the cascade, for observers that track children.
	RemovedWorkshops []string
}

func (e UnitRemovedEvent) Name() string { return "unit.removed" }

type WorkshopCreatedEvent struct {
	Workshop entities.Workshop
}

func (e WorkshopCreatedEvent) Name() string { return "workshop.created" }

type WorkshopRemovedEvent struct {
	ID string
}

func (e WorkshopRemovedEvent) Name() string { return "workshop.removed" }

type ExtinguisherCreatedEvent struct {
	Extinguisher entities.Extinguisher
}

func (e ExtinguisherCreatedEvent) Name() string { return "extinguisher.created" }

type ExtinguisherUpdatedEvent struct {
	Extinguisher entities.Extinguisher
}

func (e ExtinguisherUpdatedEvent) Name() string { return "extinguisher.updated" }

type ExtinguisherRemovedEvent struct {
	ID string
}

func (e ExtinguisherRemovedEvent) Name() string { return "extinguisher.removed" }

type UserRegisteredEvent struct {
	User entities.User
}

func (e UserRegisteredEvent) Name() string { return "user.registered" }
