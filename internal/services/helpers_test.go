package services

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inspectra/internal/repositories"
	"inspectra/pkg/customvalidator"
	"inspectra/pkg/eventbus"
	"inspectra/pkg/idgen"
)

var testNow = time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

type testEnv struct {
	unitRepo         repositories.UnitRepositoryInterface
	workshopRepo     repositories.WorkshopRepositoryInterface
	extinguisherRepo repositories.ExtinguisherRepositoryInterface
	userRepo         repositories.UserRepositoryInterface

	units         *UnitService
	workshops     *WorkshopService
	extinguishers *ExtinguisherService
	auth          *AuthService
	dashboard     *DashboardService
	reports       *ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))

	logger := zap.NewNop()
	bus := eventbus.New(logger)
	gen := idgen.NewSequential("id")

	env := &testEnv{
		unitRepo:         repositories.NewUnitRepository(),
		workshopRepo:     repositories.NewWorkshopRepository(),
		extinguisherRepo: repositories.NewExtinguisherRepository(),
		userRepo:         repositories.NewUserRepository(),
	}
	env.units = NewUnitService(env.unitRepo, env.workshopRepo, env.extinguisherRepo, v, gen, bus, logger, fixedNow)
	env.workshops = NewWorkshopService(env.workshopRepo, env.unitRepo, env.extinguisherRepo, v, gen, bus, logger, fixedNow)
	env.extinguishers = NewExtinguisherService(env.extinguisherRepo, env.workshopRepo, v, gen, bus, logger, fixedNow)
	env.auth = NewAuthService(env.userRepo, gen, bus, logger)
	env.dashboard = NewDashboardService(env.unitRepo, env.workshopRepo, env.extinguisherRepo, logger, fixedNow)
	env.reports = NewReportService(env.unitRepo, env.workshopRepo, env.extinguisherRepo, logger, fixedNow)
	return env
}
