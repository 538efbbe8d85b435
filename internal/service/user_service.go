package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/santoso/visitor-gate/internal/apperror"
	"github.com/santoso/visitor-gate/internal/domain"
	"github.com/santoso/visitor-gate/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

func (s *UserService) List(ctx context.Context, search string, page, limit int) ([]*domain.User, int64, error) {
	total, err := s.userRepo.Count(ctx, search)
	if err != nil {
		return nil, 0, err
	}

	users, err := s.userRepo.List(ctx, search, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	if !input.Role.IsValid() {
		return nil, apperror.Validation("role must be one of SUPERUSER, ADMIN, RECEPTIONIST")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         input.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Update replaces name, email and role; the password is rehashed only when a
// new one is supplied.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UserInput) (*domain.User, error) {
	if !input.Role.IsValid() {
		return nil, apperror.Validation("role must be one of SUPERUSER, ADMIN, RECEPTIONIST")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Role = input.Role

	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
