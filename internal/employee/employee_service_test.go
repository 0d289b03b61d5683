package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/employee"
	employeeerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/employee/errors"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/events"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	employee.Repository
	createFn               func(ctx context.Context, empl *employee.Employee) error
	findByIDFn             func(ctx context.Context, id string) (*employee.Employee, error)
	findByUserIDFn         func(ctx context.Context, userID string) (*employee.Employee, error)
	findAllWithRelationsFn func(ctx context.Context) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepo) Create(ctx context.Context, empl *employee.Employee) error {
	return f.createFn(ctx, empl)
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeEmployeeRepo) FindByUserID(ctx context.Context, userID string) (*employee.Employee, error) {
	return f.findByUserIDFn(ctx, userID)
}

func (f *fakeEmployeeRepo) FindAllWithRelations(ctx context.Context) ([]employee.Employee, error) {
	return f.findAllWithRelationsFn(ctx)
}

type fakeOutboxRepo struct {
	kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	return f.createFn(ctx, event)
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:        "Alice Smith",
		Email:       "alice@example.com",
		Role:        employee.RoleEmployee,
		Designation: "Software Engineer",
		Department:  "Platform",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the employee and the outbox event in one tx", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		mock.ExpectBegin()
		mock.ExpectCommit()

		var created *employee.Employee
		repo := &fakeEmployeeRepo{
			createFn: func(ctx context.Context, empl *employee.Employee) error {
				created = empl
				return nil
			},
		}
		var event kafka.OutboxEvent
		outbox := &fakeOutboxRepo{
			createFn: func(ctx context.Context, e kafka.OutboxEvent) error {
				event = e
				return nil
			},
		}
		svc := employee.NewService(db, repo, outbox)

		resp, err := svc.Create(ctx, validCreateRequest())
		assert.NoError(t, err)
		assert.Equal(t, "Alice Smith", created.Name)
		assert.Equal(t, created.ID.String(), resp.ID)

		assert.Equal(t, "employee", event.AggregateType)
		assert.Equal(t, created.ID.String(), event.AggregateID)
		assert.Equal(t, "employee_created", event.EventType)
		assert.Equal(t, events.EmployeeCreatedTopic, event.Topic)
		assert.Equal(t, kafka.OutboxStatusPending, event.Status)

		var payload events.EmployeeCreatedEvent
		assert.NoError(t, json.Unmarshal(event.Payload, &payload))
		assert.Equal(t, "alice@example.com", payload.Email)
		assert.Equal(t, "Alice Smith", payload.Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("resolves manager and lead references", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		mock.ExpectBegin()
		mock.ExpectCommit()

		managerID := uuid.New()
		leadID := uuid.New()
		var created *employee.Employee
		repo := &fakeEmployeeRepo{
			createFn: func(ctx context.Context, empl *employee.Employee) error {
				created = empl
				return nil
			},
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return &employee.Employee{ID: uuid.MustParse(id)}, nil
			},
		}
		svc := employee.NewService(db, repo, nil)

		req := validCreateRequest()
		req.ManagerID = managerID.String()
		req.LeadID = leadID.String()

		_, err = svc.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, managerID, *created.ManagerID)
		assert.Equal(t, leadID, *created.LeadID)
	})

	t.Run("unknown manager reference", func(t *testing.T) {
		repo := &fakeEmployeeRepo{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := employee.NewService(nil, repo, nil)

		req := validCreateRequest()
		req.ManagerID = uuid.NewString()

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrManagerNotFound)
	})

	t.Run("unknown lead reference", func(t *testing.T) {
		managerID := uuid.New()
		leadID := uuid.New()
		repo := &fakeEmployeeRepo{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				if id == managerID.String() {
					return &employee.Employee{ID: managerID}, nil
				}
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := employee.NewService(nil, repo, nil)

		req := validCreateRequest()
		req.ManagerID = managerID.String()
		req.LeadID = leadID.String()

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrLeadNotFound)
	})

	t.Run("malformed reference id", func(t *testing.T) {
		svc := employee.NewService(nil, &fakeEmployeeRepo{}, nil)

		req := validCreateRequest()
		req.ManagerID = "not-a-uuid"

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("duplicate email rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeEmployeeRepo{
			createFn: func(ctx context.Context, empl *employee.Employee) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"}
			},
		}
		svc := employee.NewService(db, repo, nil)

		_, err = svc.Create(ctx, validCreateRequest())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("unlinked user", func(t *testing.T) {
		repo := &fakeEmployeeRepo{
			findByUserIDFn: func(ctx context.Context, userID string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := employee.NewService(nil, repo, nil)

		_, err := svc.GetByUserID(ctx, "user-x")
		assert.ErrorIs(t, err, employeeerrors.ErrNotLinkedToUser)
	})

	t.Run("maps the linked employee", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeEmployeeRepo{
			findByUserIDFn: func(ctx context.Context, userID string) (*employee.Employee, error) {
				return &employee.Employee{ID: id, Name: "Alice", Email: "alice@example.com"}, nil
			},
		}
		svc := employee.NewService(nil, repo, nil)

		resp, err := svc.GetByUserID(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
		assert.Equal(t, "Alice", resp.Name)
	})
}

func TestEmployeeService_GetDirectory(t *testing.T) {
	managerID := uuid.New()
	repo := &fakeEmployeeRepo{
		findAllWithRelationsFn: func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{
				{ID: managerID, Name: "Manager", Role: employee.RoleManager},
				{
					ID:        uuid.New(),
					Name:      "Alice",
					ManagerID: &managerID,
					Manager:   &employee.Employee{ID: managerID, Name: "Manager"},
				},
			}, nil
		},
	}
	svc := employee.NewService(nil, repo, nil)

	resp, err := svc.GetDirectory(context.Background())
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Manager", resp[1].Manager.Name)
	assert.Equal(t, managerID.String(), resp[1].ManagerID)
}

func TestEmployeeService_GetByID(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		repo := &fakeEmployeeRepo{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := employee.NewService(nil, repo, nil)

		_, err := svc.GetByID(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
