package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/santoso/visitor-gate/internal/domain"
	"github.com/santoso/visitor-gate/internal/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.User{}, "id = ?", id).Error
}

func (r *userRepository) List(ctx context.Context, search string, offset, limit int) ([]*domain.User, error) {
	var users []*domain.User
	err := searchByName(r.db.WithContext(ctx), search).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context, search string) (int64, error) {
	var total int64
	err := searchByName(r.db.WithContext(ctx).Model(&domain.User{}), search).Count(&total).Error
	return total, err
}

func (r *userRepository) CountByRole(ctx context.Context) ([]repository.RoleCount, error) {
	var counts []repository.RoleCount
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Select("role, count(*) as total").
		Group("role").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func searchByName(db *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return db
	}
	return db.Where("name ILIKE ?", "%"+search+"%")
}
