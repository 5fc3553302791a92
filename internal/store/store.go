package store

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"inspectra/internal/dto"
	"inspectra/internal/repositories"
	"inspectra/internal/services"
	"inspectra/pkg/eventbus"
	"inspectra/pkg/idgen"
)

// Store is the command dispatch boundary. The presentation layer issues
// commands and reads snapshots exclusively through it; one mutex serializes
// every command and aggregation so callers on any goroutine observe the
// original single-writer semantics.
type Store struct {
	mu sync.Mutex

	units         *services.UnitService
	workshops     *services.WorkshopService
	extinguishers *services.ExtinguisherService
	auth          *services.AuthService
	dashboard     *services.DashboardService
	reports       *services.ReportService

	userRepository repositories.UserRepositoryInterface

	logger *zap.Logger
	now    func() time.Time
}

func New(
	validate *validator.Validate,
	idGen idgen.Generator,
	bus *eventbus.Bus,
	logger *zap.Logger,
	now func() time.Time,
) *Store {
	unitRepo := repositories.NewUnitRepository()
	workshopRepo := repositories.NewWorkshopRepository()
	extinguisherRepo := repositories.NewExtinguisherRepository()
	userRepo := repositories.NewUserRepository()

	return &Store{
		units:          services.NewUnitService(unitRepo, workshopRepo, extinguisherRepo, validate, idGen, bus, logger, now),
		workshops:      services.NewWorkshopService(workshopRepo, unitRepo, extinguisherRepo, validate, idGen, bus, logger, now),
		extinguishers:  services.NewExtinguisherService(extinguisherRepo, workshopRepo, validate, idGen, bus, logger, now),
		auth:           services.NewAuthService(userRepo, idGen, bus, logger),
		dashboard:      services.NewDashboardService(unitRepo, workshopRepo, extinguisherRepo, logger, now),
		reports:        services.NewReportService(unitRepo, workshopRepo, extinguisherRepo, logger, now),
		userRepository: userRepo,
		logger:         logger,
		now:            now,
	}
}

// --- unit commands ---

func (s *Store) AddUnit(ctx context.Context, payload dto.CreateUnitDTO) (*dto.UnitDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.units.CreateUnit(ctx, payload)
}

func (s *Store) RemoveUnit(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.units.DeleteUnit(ctx, id)
}

func (s *Store) Units(ctx context.Context) ([]dto.UnitDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.units.GetUnits(ctx)
}

// --- workshop commands ---

func (s *Store) AddWorkshop(ctx context.Context, payload dto.CreateWorkshopDTO) (*dto.WorkshopDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workshops.CreateWorkshop(ctx, payload)
}

func (s *Store) RemoveWorkshop(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workshops.DeleteWorkshop(ctx, id)
}

// Workshops returns a unit's workshops, narrowed by an optional free-text
// query.
func (s *Store) Workshops(ctx context.Context, unitID, query string) ([]dto.WorkshopDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard.SearchWorkshops(ctx, unitID, query)
}

// --- extinguisher commands ---

func (s *Store) AddExtinguisher(ctx context.Context, payload dto.CreateExtinguisherDTO) (*dto.ExtinguisherDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extinguishers.CreateExtinguisher(ctx, payload)
}

func (s *Store) UpdateExtinguisher(ctx context.Context, id string, payload dto.UpdateExtinguisherDTO) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extinguishers.UpdateExtinguisher(ctx, id, payload)
}

func (s *Store) RemoveExtinguisher(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extinguishers.DeleteExtinguisher(ctx, id)
}

func (s *Store) Extinguishers(ctx context.Context, workshopID, query string) ([]dto.ExtinguisherDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard.SearchExtinguishers(ctx, workshopID, query)
}

func (s *Store) FindExtinguisher(ctx context.Context, id string) (*dto.ExtinguisherDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extinguishers.FindExtinguisher(ctx, id)
}

// --- auth commands ---

func (s *Store) Login(ctx context.Context, payload dto.LoginDTO) dto.SessionDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth.Login(ctx, payload)
}

func (s *Store) Logout(ctx context.Context) dto.SessionDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth.Logout()
}

func (s *Store) Register(ctx context.Context, payload dto.RegisterDTO) dto.SessionDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth.Register(ctx, payload)
}

func (s *Store) ClearError(ctx context.Context) dto.SessionDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth.ClearError()
}

func (s *Store) Session(ctx context.Context) dto.SessionDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth.Session()
}

func (s *Store) Users(ctx context.Context) ([]dto.UserDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth.GetUsers(ctx)
}

// --- derived views ---

func (s *Store) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard.Dashboard(ctx)
}

func (s *Store) Notifications(ctx context.Context) ([]dto.NotificationDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard.Notifications(ctx)
}

func (s *Store) ExportRegister(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reports.ExportRegister(ctx, path)
}
