package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/santoso/visitor-gate/internal/domain"
)

type RoleCount struct {
	Role  domain.Role
	Total int64
}

type DeviceCount struct {
	DeviceID uuid.UUID
	Total    int64
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, offset, limit int) ([]*domain.User, error)
	Count(ctx context.Context, search string) (int64, error)
	CountByRole(ctx context.Context) ([]RoleCount, error)
}

type DeviceRepository interface {
	Create(ctx context.Context, device *domain.Device) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Device, error)
	GetByKey(ctx context.Context, deviceKey string) (*domain.Device, error)
	Update(ctx context.Context, device *domain.Device) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, offset, limit int) ([]*domain.Device, error)
	Count(ctx context.Context, search string) (int64, error)
}

type VisitorRepository interface {
	Create(ctx context.Context, visitor *domain.Visitor) error
	GetByID(ctx context.Context, id uint) (*domain.Visitor, error)
	GetByIdcardNum(ctx context.Context, idcardNum string) (*domain.Visitor, error)
	Update(ctx context.Context, visitor *domain.Visitor) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, search string, offset, limit int) ([]*domain.Visitor, error)
	Count(ctx context.Context, search string) (int64, error)

	// ListRoster pages visitors in ascending record-id order, the ordering
	// contract of the device sync protocol.
	ListRoster(ctx context.Context, offset, limit int) ([]*domain.Visitor, error)
	CountAll(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}

type AttendanceRepository interface {
	Create(ctx context.Context, attendance *domain.Attendance) error
	List(ctx context.Context, offset, limit int) ([]*domain.Attendance, error)
	Count(ctx context.Context) (int64, error)
	CountByDevice(ctx context.Context) ([]DeviceCount, error)
}

type Repositories struct {
	User       UserRepository
	Device     DeviceRepository
	Visitor    VisitorRepository
	Attendance AttendanceRepository
}
