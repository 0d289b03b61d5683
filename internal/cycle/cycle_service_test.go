package cycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/cycle"
	cycleerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/cycle/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeCycleRepo struct {
	cycle.Repository
	createFn     func(ctx context.Context, c *cycle.AppraisalCycle) error
	findAllFn    func(ctx context.Context) ([]cycle.AppraisalCycle, error)
	findByIDFn   func(ctx context.Context, id string) (*cycle.AppraisalCycle, error)
	updateFn     func(ctx context.Context, c *cycle.AppraisalCycle) error
	activateFn   func(ctx context.Context, id string) error
	findActiveFn func(ctx context.Context) (*cycle.AppraisalCycle, error)
}

func (f *fakeCycleRepo) Create(ctx context.Context, c *cycle.AppraisalCycle) error {
	return f.createFn(ctx, c)
}

func (f *fakeCycleRepo) FindAll(ctx context.Context) ([]cycle.AppraisalCycle, error) {
	return f.findAllFn(ctx)
}

func (f *fakeCycleRepo) FindByID(ctx context.Context, id string) (*cycle.AppraisalCycle, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeCycleRepo) Update(ctx context.Context, c *cycle.AppraisalCycle) error {
	return f.updateFn(ctx, c)
}

func (f *fakeCycleRepo) Activate(ctx context.Context, id string) error {
	return f.activateFn(ctx, id)
}

func (f *fakeCycleRepo) FindActive(ctx context.Context) (*cycle.AppraisalCycle, error) {
	return f.findActiveFn(ctx)
}

func TestCycleService_Create(t *testing.T) {
	ctx := context.Background()

	validReq := cycle.CreateCycleRequest{
		Name:      "Annual Review FY26",
		Year:      2026,
		StartDate: "2026-04-01",
		EndDate:   "2027-03-31",
	}

	t.Run("creates inactive cycle without touching activation", func(t *testing.T) {
		var created *cycle.AppraisalCycle
		repo := &fakeCycleRepo{
			createFn: func(ctx context.Context, c *cycle.AppraisalCycle) error {
				created = c
				return nil
			},
			activateFn: func(ctx context.Context, id string) error {
				t.Fatal("activate should not be called for inactive cycles")
				return nil
			},
		}
		svc := cycle.NewService(repo)

		resp, err := svc.Create(ctx, validReq)
		assert.NoError(t, err)
		assert.Equal(t, "Annual Review FY26", created.Name)
		assert.Equal(t, "2026-04-01", resp.StartDate)
		assert.False(t, resp.IsActive)
	})

	t.Run("isActive flips the single active flag", func(t *testing.T) {
		var activatedID string
		repo := &fakeCycleRepo{
			createFn: func(ctx context.Context, c *cycle.AppraisalCycle) error { return nil },
			activateFn: func(ctx context.Context, id string) error {
				activatedID = id
				return nil
			},
		}
		svc := cycle.NewService(repo)

		req := validReq
		req.IsActive = true

		resp, err := svc.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, resp.ID, activatedID)
		assert.True(t, resp.IsActive)
	})

	t.Run("start after end is rejected", func(t *testing.T) {
		svc := cycle.NewService(&fakeCycleRepo{})

		req := validReq
		req.StartDate = "2027-04-01"
		req.EndDate = "2026-03-31"

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, cycleerrors.ErrInvalidDateRange)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		svc := cycle.NewService(&fakeCycleRepo{})

		req := validReq
		req.StartDate = "01/04/2026"

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, cycleerrors.ErrInvalidDateFormat)
	})
}

func TestCycleService_Update(t *testing.T) {
	ctx := context.Background()
	cycleID := uuid.New()

	stored := func() *cycle.AppraisalCycle {
		c := &cycle.AppraisalCycle{ID: cycleID, Name: "FY25", Year: 2025}
		c.StartDate, _ = parseTestDate("2025-04-01")
		c.EndDate, _ = parseTestDate("2026-03-31")
		return c
	}

	t.Run("invalid id", func(t *testing.T) {
		svc := cycle.NewService(&fakeCycleRepo{})
		_, err := svc.Update(ctx, "not-a-uuid", cycle.UpdateCycleRequest{})
		assert.ErrorIs(t, err, cycleerrors.ErrInvalidCycleID)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := &fakeCycleRepo{
			findByIDFn: func(ctx context.Context, id string) (*cycle.AppraisalCycle, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := cycle.NewService(repo)

		_, err := svc.Update(ctx, cycleID.String(), cycle.UpdateCycleRequest{})
		assert.ErrorIs(t, err, cycleerrors.ErrCycleNotFound)
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		var updated *cycle.AppraisalCycle
		repo := &fakeCycleRepo{
			findByIDFn: func(ctx context.Context, id string) (*cycle.AppraisalCycle, error) {
				return stored(), nil
			},
			updateFn: func(ctx context.Context, c *cycle.AppraisalCycle) error {
				updated = c
				return nil
			},
		}
		svc := cycle.NewService(repo)

		name := "FY25 Revised"
		resp, err := svc.Update(ctx, cycleID.String(), cycle.UpdateCycleRequest{Name: &name})
		assert.NoError(t, err)
		assert.Equal(t, "FY25 Revised", updated.Name)
		assert.Equal(t, 2025, resp.Year)
		assert.Equal(t, "2025-04-01", resp.StartDate)
	})

	t.Run("activating an inactive cycle calls the flag flip", func(t *testing.T) {
		activated := false
		repo := &fakeCycleRepo{
			findByIDFn: func(ctx context.Context, id string) (*cycle.AppraisalCycle, error) {
				return stored(), nil
			},
			updateFn: func(ctx context.Context, c *cycle.AppraisalCycle) error { return nil },
			activateFn: func(ctx context.Context, id string) error {
				activated = true
				assert.Equal(t, cycleID.String(), id)
				return nil
			},
		}
		svc := cycle.NewService(repo)

		active := true
		resp, err := svc.Update(ctx, cycleID.String(), cycle.UpdateCycleRequest{IsActive: &active})
		assert.NoError(t, err)
		assert.True(t, activated)
		assert.True(t, resp.IsActive)
	})

	t.Run("deactivating writes the cleared flag", func(t *testing.T) {
		updates := 0
		repo := &fakeCycleRepo{
			findByIDFn: func(ctx context.Context, id string) (*cycle.AppraisalCycle, error) {
				c := stored()
				c.IsActive = true
				return c, nil
			},
			updateFn: func(ctx context.Context, c *cycle.AppraisalCycle) error {
				updates++
				return nil
			},
			activateFn: func(ctx context.Context, id string) error {
				t.Fatal("activate should not be called when deactivating")
				return nil
			},
		}
		svc := cycle.NewService(repo)

		inactive := false
		resp, err := svc.Update(ctx, cycleID.String(), cycle.UpdateCycleRequest{IsActive: &inactive})
		assert.NoError(t, err)
		assert.Equal(t, 2, updates)
		assert.False(t, resp.IsActive)
	})

	t.Run("update cannot invert the date range", func(t *testing.T) {
		repo := &fakeCycleRepo{
			findByIDFn: func(ctx context.Context, id string) (*cycle.AppraisalCycle, error) {
				return stored(), nil
			},
		}
		svc := cycle.NewService(repo)

		end := "2024-01-01"
		_, err := svc.Update(ctx, cycleID.String(), cycle.UpdateCycleRequest{EndDate: &end})
		assert.ErrorIs(t, err, cycleerrors.ErrInvalidDateRange)
	})
}

func TestCycleService_GetActive(t *testing.T) {
	ctx := context.Background()

	t.Run("no active cycle yields nil without error", func(t *testing.T) {
		repo := &fakeCycleRepo{
			findActiveFn: func(ctx context.Context) (*cycle.AppraisalCycle, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := cycle.NewService(repo)

		resp, err := svc.GetActive(ctx)
		assert.NoError(t, err)
		assert.Nil(t, resp)
	})

	t.Run("returns the active cycle", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeCycleRepo{
			findActiveFn: func(ctx context.Context) (*cycle.AppraisalCycle, error) {
				return &cycle.AppraisalCycle{ID: id, Name: "FY26", IsActive: true}, nil
			},
		}
		svc := cycle.NewService(repo)

		resp, err := svc.GetActive(ctx)
		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
		assert.True(t, resp.IsActive)
	})
}

func TestCycleService_GetAll(t *testing.T) {
	repo := &fakeCycleRepo{
		findAllFn: func(ctx context.Context) ([]cycle.AppraisalCycle, error) {
			return []cycle.AppraisalCycle{
				{ID: uuid.New(), Name: "FY26", Year: 2026, IsActive: true},
				{ID: uuid.New(), Name: "FY25", Year: 2025},
			}, nil
		},
	}
	svc := cycle.NewService(repo)

	resp, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "FY26", resp[0].Name)
	assert.False(t, resp[1].IsActive)
}

func parseTestDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}
