package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindAllWithRelations(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByIDs(ctx context.Context, ids []string) ([]Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindByUserID(ctx context.Context, userID string) (*Employee, error)
	FindByManager(ctx context.Context, managerID string) ([]Employee, error)
	FindByLeadOrManager(ctx context.Context, employeeID string) ([]Employee, error)
	LinkUser(ctx context.Context, email, userID string) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindAllWithRelations(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Preload("Lead").
		Order("name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).Find(&empls, "id IN ?", ids).Error
	return empls, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "LOWER(email) = LOWER(?)", email).Error
	return &empl, err
}

func (r *repository) FindByUserID(ctx context.Context, userID string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "user_id = ?", userID).Error
	return &empl, err
}

func (r *repository) FindByManager(ctx context.Context, managerID string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&empls, "manager_id = ?", managerID).Error
	return empls, err
}

// FindByLeadOrManager returns everyone the given employee is responsible
// for as a lead, including direct reports where they are listed as manager.
func (r *repository) FindByLeadOrManager(ctx context.Context, employeeID string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where("lead_id = ? OR manager_id = ?", employeeID, employeeID).
		Order("name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) LinkUser(ctx context.Context, email, userID string) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("LOWER(email) = LOWER(?)", email).
		Update("user_id", userID).Error
}
