package postgres

import (
	"context"
	"time"

	"github.com/santoso/visitor-gate/internal/domain"
	"gorm.io/gorm"
)

type visitorRepository struct {
	db *gorm.DB
}

func NewVisitorRepository(db *gorm.DB) *visitorRepository {
	return &visitorRepository{db: db}
}

func (r *visitorRepository) Create(ctx context.Context, visitor *domain.Visitor) error {
	return r.db.WithContext(ctx).Create(visitor).Error
}

func (r *visitorRepository) GetByID(ctx context.Context, id uint) (*domain.Visitor, error) {
	var visitor domain.Visitor
	err := r.db.WithContext(ctx).First(&visitor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}

func (r *visitorRepository) GetByIdcardNum(ctx context.Context, idcardNum string) (*domain.Visitor, error) {
	var visitor domain.Visitor
	err := r.db.WithContext(ctx).First(&visitor, "idcard_num = ?", idcardNum).Error
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}

func (r *visitorRepository) Update(ctx context.Context, visitor *domain.Visitor) error {
	return r.db.WithContext(ctx).Save(visitor).Error
}

func (r *visitorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Visitor{}, "id = ?", id).Error
}

func (r *visitorRepository) List(ctx context.Context, search string, offset, limit int) ([]*domain.Visitor, error) {
	var visitors []*domain.Visitor
	err := searchByName(r.db.WithContext(ctx), search).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&visitors).Error
	if err != nil {
		return nil, err
	}
	return visitors, nil
}

func (r *visitorRepository) Count(ctx context.Context, search string) (int64, error) {
	var total int64
	err := searchByName(r.db.WithContext(ctx).Model(&domain.Visitor{}), search).Count(&total).Error
	return total, err
}

func (r *visitorRepository) ListRoster(ctx context.Context, offset, limit int) ([]*domain.Visitor, error) {
	var visitors []*domain.Visitor
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&visitors).Error
	if err != nil {
		return nil, err
	}
	return visitors, nil
}

func (r *visitorRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Visitor{}).Count(&total).Error
	return total, err
}

func (r *visitorRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.Visitor{}).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Count(&total).Error
	return total, err
}
