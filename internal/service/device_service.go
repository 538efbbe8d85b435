package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/santoso/visitor-gate/internal/domain"
	"github.com/santoso/visitor-gate/internal/repository"
)

type DeviceService struct {
	deviceRepo repository.DeviceRepository
}

func NewDeviceService(deviceRepo repository.DeviceRepository) *DeviceService {
	return &DeviceService{deviceRepo: deviceRepo}
}

type DeviceInput struct {
	Name      string
	DeviceKey string
	GroupID   string
	Location  string
}

func (s *DeviceService) List(ctx context.Context, search string, page, limit int) ([]*domain.Device, int64, error) {
	total, err := s.deviceRepo.Count(ctx, search)
	if err != nil {
		return nil, 0, err
	}

	devices, err := s.deviceRepo.List(ctx, search, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	return devices, total, nil
}

func (s *DeviceService) Get(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	return s.deviceRepo.GetByID(ctx, id)
}

// Create registers a device. When no key is supplied one is generated; keys
// are the device's sole credential and must be unguessable.
func (s *DeviceService) Create(ctx context.Context, input DeviceInput) (*domain.Device, error) {
	deviceKey := input.DeviceKey
	if deviceKey == "" {
		deviceKey = uuid.NewString()
	}

	device := &domain.Device{
		ID:        uuid.New(),
		Name:      input.Name,
		DeviceKey: deviceKey,
		GroupID:   input.GroupID,
		Location:  input.Location,
	}

	if err := s.deviceRepo.Create(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

func (s *DeviceService) Update(ctx context.Context, id uuid.UUID, input DeviceInput) (*domain.Device, error) {
	device, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	device.Name = input.Name
	device.GroupID = input.GroupID
	device.Location = input.Location
	if input.DeviceKey != "" {
		device.DeviceKey = input.DeviceKey
	}

	if err := s.deviceRepo.Update(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

func (s *DeviceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.deviceRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.deviceRepo.Delete(ctx, id)
}
