package service

import (
	"context"

	"github.com/santoso/visitor-gate/internal/domain"
	"github.com/santoso/visitor-gate/internal/repository"
)

type VisitorService struct {
	visitorRepo repository.VisitorRepository
}

func NewVisitorService(visitorRepo repository.VisitorRepository) *VisitorService {
	return &VisitorService{visitorRepo: visitorRepo}
}

type VisitorInput struct {
	Name      string
	IdcardNum string
	ImgBase64 string
	Type      *int
	Passtime  string
}

func (s *VisitorService) List(ctx context.Context, search string, page, limit int) ([]*domain.Visitor, int64, error) {
	total, err := s.visitorRepo.Count(ctx, search)
	if err != nil {
		return nil, 0, err
	}

	visitors, err := s.visitorRepo.List(ctx, search, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	return visitors, total, nil
}

func (s *VisitorService) Get(ctx context.Context, id uint) (*domain.Visitor, error) {
	return s.visitorRepo.GetByID(ctx, id)
}

func (s *VisitorService) Create(ctx context.Context, input VisitorInput) (*domain.Visitor, error) {
	visitor := &domain.Visitor{
		Name:      input.Name,
		IdcardNum: input.IdcardNum,
		ImgBase64: input.ImgBase64,
		Type:      input.Type,
		Passtime:  input.Passtime,
	}

	if err := s.visitorRepo.Create(ctx, visitor); err != nil {
		return nil, err
	}

	return visitor, nil
}

func (s *VisitorService) Update(ctx context.Context, id uint, input VisitorInput) (*domain.Visitor, error) {
	visitor, err := s.visitorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	visitor.Name = input.Name
	visitor.IdcardNum = input.IdcardNum
	visitor.ImgBase64 = input.ImgBase64
	visitor.Type = input.Type
	visitor.Passtime = input.Passtime

	if err := s.visitorRepo.Update(ctx, visitor); err != nil {
		return nil, err
	}

	return visitor, nil
}

func (s *VisitorService) Delete(ctx context.Context, id uint) error {
	if _, err := s.visitorRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.visitorRepo.Delete(ctx, id)
}
