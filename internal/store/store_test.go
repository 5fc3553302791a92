package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inspectra/internal/dto"
	"inspectra/internal/inspection"
	"inspectra/pkg/customvalidator"
	"inspectra/pkg/eventbus"
	"inspectra/pkg/idgen"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	logger := zap.NewNop()
	return New(v, idgen.NewSequential("id"), eventbus.New(logger), logger, time.Now)
}

func TestStore_SeedLoadsDemoData(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.Seed(ctx))

	users, err := st.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin@inspectra.com", users[0].Email)

	d, err := st.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, d.TotalUnits)
	assert.Equal(t, 3, d.TotalWorkshops)
	assert.Equal(t, 5, d.TotalExtinguishers)
	assert.Equal(t, 1, d.DueSoon)
}

func TestStore_SeededDemoLogin(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.Seed(ctx))

	session := st.Login(ctx, dto.LoginDTO{Email: "ADMIN@inspectra.com", Password: "123456"})
	assert.True(t, session.IsAuthenticated)
	require.NotNil(t, session.CurrentUser)
	assert.Equal(t, "admin@inspectra.com", session.CurrentUser.Email)
}

func TestStore_CommandFlow(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	unit, err := st.AddUnit(ctx, dto.CreateUnitDTO{Name: "Unit A"})
	require.NoError(t, err)
	workshop, err := st.AddWorkshop(ctx, dto.CreateWorkshopDTO{UnitID: unit.ID, Name: "Workshop 1"})
	require.NoError(t, err)
	item, err := st.AddExtinguisher(ctx, dto.CreateExtinguisherDTO{
		WorkshopID:     workshop.ID,
		Code:           "EXT-001",
		NextInspection: null.StringFrom(time.Now().AddDate(0, 0, 10).Format("2006-01-02")),
	})
	require.NoError(t, err)
	assert.Equal(t, inspection.StatusNeedsReview, item.Status)

	notifications, err := st.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Unit A", notifications[0].UnitName)

	require.NoError(t, st.RemoveUnit(ctx, unit.ID))

	d, err := st.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, d.TotalUnits)
	assert.Equal(t, 0, d.TotalWorkshops)
	assert.Equal(t, 0, d.TotalExtinguishers, "removal cascades to the whole subtree")
}

func TestStore_SerializesConcurrentCommands(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := st.AddUnit(ctx, dto.CreateUnitDTO{Name: "Unit"})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	units, err := st.Units(ctx)
	require.NoError(t, err)
	assert.Len(t, units, workers*perWorker)
}
