package postgres

import (
	"context"

	"github.com/santoso/visitor-gate/internal/domain"
	"github.com/santoso/visitor-gate/internal/repository"
	"gorm.io/gorm"
)

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *attendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, attendance *domain.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *attendanceRepository) List(ctx context.Context, offset, limit int) ([]*domain.Attendance, error) {
	var attendances []*domain.Attendance
	err := r.db.WithContext(ctx).
		Preload("Visitor").
		Preload("Device").
		Order("time DESC").
		Limit(limit).
		Offset(offset).
		Find(&attendances).Error
	if err != nil {
		return nil, err
	}
	return attendances, nil
}

func (r *attendanceRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Attendance{}).Count(&total).Error
	return total, err
}

func (r *attendanceRepository) CountByDevice(ctx context.Context) ([]repository.DeviceCount, error) {
	var counts []repository.DeviceCount
	err := r.db.WithContext(ctx).
		Model(&domain.Attendance{}).
		Select("device_id, count(*) as total").
		Group("device_id").
		Order("device_id ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
