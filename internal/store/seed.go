package store

import (
	"context"

	"github.com/aarondl/null/v8"

	"inspectra/internal/dto"
	"inspectra/internal/entities"
)

// Seed loads the demo data set: two credentials and a small site tree with
// inspection dates spread across the status classes. Two extinguishers share
// a code; codes carry no uniqueness rule.
func (s *Store) Seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	demoUsers := []entities.User{
		{ID: "u1", Email: "admin@inspectra.com", Password: "123456", Name: "Admin", FullName: "Demo Account", Role: entities.RoleAdmin},
		{ID: "u2", Email: "tech@inspectra.com", Password: "123456", Name: "Technician", FullName: "Demo Account", Role: entities.RoleEditor},
	}
	// Prepending reverses order; walk backwards so u1 ends up first.
	for i := len(demoUsers) - 1; i >= 0; i-- {
		if err := s.userRepository.CreateUser(ctx, demoUsers[i]); err != nil {
			return err
		}
	}

	unitA, err := s.units.CreateUnit(ctx, dto.CreateUnitDTO{
		Name:        "Unit A",
		Location:    null.StringFrom("Montréal"),
		Description: null.StringFrom("Main site"),
	})
	if err != nil {
		return err
	}
	unitB, err := s.units.CreateUnit(ctx, dto.CreateUnitDTO{
		Name:        "Unit B",
		Location:    null.StringFrom("Laval"),
		Description: null.StringFrom("Warehouse"),
	})
	if err != nil {
		return err
	}

	workshop1, err := s.workshops.CreateWorkshop(ctx, dto.CreateWorkshopDTO{
		UnitID:      unitA.ID,
		Name:        "Workshop 1",
		Location:    null.StringFrom("Production zone"),
		Description: null.StringFrom("Staff access"),
	})
	if err != nil {
		return err
	}
	if _, err := s.workshops.CreateWorkshop(ctx, dto.CreateWorkshopDTO{
		UnitID:      unitA.ID,
		Name:        "Workshop 2",
		Location:    null.StringFrom("Storage"),
		Description: null.StringFrom("Racking"),
	}); err != nil {
		return err
	}
	receiving, err := s.workshops.CreateWorkshop(ctx, dto.CreateWorkshopDTO{
		UnitID:      unitB.ID,
		Name:        "Receiving",
		Location:    null.StringFrom("Dock"),
		Description: null.StringFrom("Main entrance"),
	})
	if err != nil {
		return err
	}

	now := s.now()
	date := func(days int) null.String {
		return null.StringFrom(now.AddDate(0, 0, days).Format("2006-01-02"))
	}

	seedExtinguishers := []dto.CreateExtinguisherDTO{
		{WorkshopID: workshop1.ID, Code: "EXT-001", Type: null.StringFrom("ABC"), Location: null.StringFrom("Entrance"), NextInspection: date(45)},
		{WorkshopID: workshop1.ID, Code: "EXT-002", Type: null.StringFrom("CO2"), Location: null.StringFrom("Hallway"), NextInspection: date(20)},
		{WorkshopID: workshop1.ID, Code: "EXT-001", Type: null.StringFrom("ABC"), Location: null.StringFrom("Entrance"), NextInspection: date(45)},
		{WorkshopID: receiving.ID, Code: "EXT-010", Type: null.StringFrom("ABC"), Location: null.StringFrom("Dock"), NextInspection: date(-30)},
		{WorkshopID: receiving.ID, Code: "EXT-011", Type: null.StringFrom("CO2"), Location: null.StringFrom("Dock office")},
	}
	for _, payload := range seedExtinguishers {
		if _, err := s.extinguishers.CreateExtinguisher(ctx, payload); err != nil {
			return err
		}
	}

	s.logger.Info("demo data seeded")
	return nil
}
