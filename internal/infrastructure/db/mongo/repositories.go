package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type userRepository struct {
	*collection[domain.User, *domain.User]
}

func (r userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

type departmentRepository struct {
	*collection[domain.Department, *domain.Department]
}

func (r departmentRepository) FindByName(ctx context.Context, name string) (*domain.Department, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r departmentRepository) FindByCode(ctx context.Context, code string) (*domain.Department, error) {
	return r.findOne(ctx, bson.M{"code": code})
}

type positionRepository struct {
	*collection[domain.Position, *domain.Position]
}

func (r positionRepository) FindByName(ctx context.Context, name string) (*domain.Position, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

type reviewerRepository struct {
	*collection[domain.Reviewer, *domain.Reviewer]
}

func (r reviewerRepository) FindByDepartment(ctx context.Context, departmentID string) (*domain.Reviewer, error) {
	return r.findOne(ctx, bson.M{"department_id": departmentID})
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// Store holds one collection per resource in a single database.
type Store struct {
	Repos   *ports.Repositories
	indexed []indexer
}

// NewStore binds the resource collections of db.
func NewStore(db *mongo.Database) *Store {
	users := newCollection[domain.User](db, "users", domain.ErrUserNotFound,
		uniqueField{"email", domain.ErrEmailTaken})
	departments := newCollection[domain.Department](db, "departments", domain.ErrDepartmentNotFound,
		uniqueField{"name", domain.ErrDepartmentNameTaken},
		uniqueField{"code", domain.ErrDepartmentCodeTaken})
	positions := newCollection[domain.Position](db, "positions", domain.ErrPositionNotFound,
		uniqueField{"name", domain.ErrPositionNameTaken})
	reviewers := newCollection[domain.Reviewer](db, "reviewers", domain.ErrReviewerNotFound,
		uniqueField{"department_id", domain.ErrDepartmentReviewed})

	return &Store{
		Repos: &ports.Repositories{
			Users:        userRepository{users},
			Departments:  departmentRepository{departments},
			Positions:    positionRepository{positions},
			Employees:    newCollection[domain.Employee](db, "employees", domain.ErrEmployeeNotFound),
			Leaves:       newCollection[domain.Leave](db, "leaves", domain.ErrLeaveNotFound),
			Licenses:     newCollection[domain.License](db, "licenses", domain.ErrLicenseNotFound),
			Payrolls:     newCollection[domain.Payroll](db, "payrolls", domain.ErrPayrollNotFound),
			Performances: newCollection[domain.Performance](db, "performances", domain.ErrPerformanceNotFound),
			Reviewers:    reviewerRepository{reviewers},
		},
		indexed: []indexer{users, departments, positions, reviewers},
	}
}

// EnsureIndexes creates the unique indexes that back the uniqueness rules.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	for _, ix := range s.indexed {
		if err := ix.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
