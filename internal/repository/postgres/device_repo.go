package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/santoso/visitor-gate/internal/domain"
	"gorm.io/gorm"
)

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *deviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) Create(ctx context.Context, device *domain.Device) error {
	return r.db.WithContext(ctx).Create(device).Error
}

func (r *deviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	var device domain.Device
	err := r.db.WithContext(ctx).First(&device, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *deviceRepository) GetByKey(ctx context.Context, deviceKey string) (*domain.Device, error) {
	var device domain.Device
	err := r.db.WithContext(ctx).First(&device, "device_key = ?", deviceKey).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *deviceRepository) Update(ctx context.Context, device *domain.Device) error {
	return r.db.WithContext(ctx).Save(device).Error
}

func (r *deviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Device{}, "id = ?", id).Error
}

func (r *deviceRepository) List(ctx context.Context, search string, offset, limit int) ([]*domain.Device, error) {
	var devices []*domain.Device
	err := searchByName(r.db.WithContext(ctx), search).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&devices).Error
	if err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *deviceRepository) Count(ctx context.Context, search string) (int64, error) {
	var total int64
	err := searchByName(r.db.WithContext(ctx).Model(&domain.Device{}), search).Count(&total).Error
	return total, err
}
