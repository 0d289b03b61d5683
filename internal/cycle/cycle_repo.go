package cycle

import (
	"context"
	"database/sql"
	"errors"

	cycleerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/cycle/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=cycle_repo.go -destination=mock/cycle_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *AppraisalCycle) error
	FindAll(ctx context.Context) ([]AppraisalCycle, error)
	FindByID(ctx context.Context, id string) (*AppraisalCycle, error)
	FindActive(ctx context.Context) (*AppraisalCycle, error)
	Update(ctx context.Context, c *AppraisalCycle) error
	Activate(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, c *AppraisalCycle) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]AppraisalCycle, error) {
	var cycles []AppraisalCycle
	err := r.db.WithContext(ctx).
		Order("year DESC, start_date DESC").
		Find(&cycles).Error
	return cycles, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*AppraisalCycle, error) {
	var c AppraisalCycle
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) FindActive(ctx context.Context) (*AppraisalCycle, error) {
	var c AppraisalCycle
	err := r.db.WithContext(ctx).First(&c, "is_active = ?", true).Error
	return &c, err
}

func (r *repository) Update(ctx context.Context, c *AppraisalCycle) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Activate flips the active flag to the given cycle. Both statements run in one
// database transaction so a partial failure can never leave two active cycles.
func (r *repository) Activate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&AppraisalCycle{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		res := tx.Model(&AppraisalCycle{}).
			Where("id = ?", id).
			Update("is_active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ActiveCycle resolves the single active appraisal cycle. Every cycle-scoped
// write goes through this guard and fails uniformly when no cycle is active.
func ActiveCycle(ctx context.Context, repo Repository) (*AppraisalCycle, error) {
	c, err := repo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cycleerrors.ErrNoActiveCycle
		}
		return nil, err
	}
	return c, nil
}
