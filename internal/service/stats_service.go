package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/santoso/visitor-gate/internal/domain"
	"github.com/santoso/visitor-gate/internal/repository"
	"gorm.io/gorm"
)

type StatsService struct {
	userRepo       repository.UserRepository
	deviceRepo     repository.DeviceRepository
	visitorRepo    repository.VisitorRepository
	attendanceRepo repository.AttendanceRepository
}

func NewStatsService(userRepo repository.UserRepository, deviceRepo repository.DeviceRepository, visitorRepo repository.VisitorRepository, attendanceRepo repository.AttendanceRepository) *StatsService {
	return &StatsService{
		userRepo:       userRepo,
		deviceRepo:     deviceRepo,
		visitorRepo:    visitorRepo,
		attendanceRepo: attendanceRepo,
	}
}

type MonthlyCount struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}

type DeviceUsage struct {
	Device string `json:"device"`
	Total  int64  `json:"total"`
}

type RoleTotal struct {
	Role  domain.Role `json:"role"`
	Total int64       `json:"total"`
}

// VisitorsByMonth returns twelve buckets of visitor registrations for the
// current year.
func (s *StatsService) VisitorsByMonth(ctx context.Context) ([]MonthlyCount, error) {
	now := time.Now()
	year := now.Year()

	counts := make([]MonthlyCount, 0, 12)
	for month := time.January; month <= time.December; month++ {
		start := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

		total, err := s.visitorRepo.CountCreatedBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}

		counts = append(counts, MonthlyCount{Month: start.Format("Jan"), Total: total})
	}

	return counts, nil
}

// DeviceUsage returns the attendance count per device, resolved to device
// names. A device deleted after uploading still shows up under a placeholder
// name.
func (s *StatsService) DeviceUsage(ctx context.Context) ([]DeviceUsage, error) {
	counts, err := s.attendanceRepo.CountByDevice(ctx)
	if err != nil {
		return nil, err
	}

	usage := make([]DeviceUsage, 0, len(counts))
	for _, c := range counts {
		name := fmt.Sprintf("Device %s", c.DeviceID)
		device, err := s.deviceRepo.GetByID(ctx, c.DeviceID)
		if err == nil {
			name = device.Name
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		usage = append(usage, DeviceUsage{Device: name, Total: c.Total})
	}

	return usage, nil
}

// UserRoles returns the user count per role.
func (s *StatsService) UserRoles(ctx context.Context) ([]RoleTotal, error) {
	counts, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}

	totals := make([]RoleTotal, 0, len(counts))
	for _, c := range counts {
		totals = append(totals, RoleTotal{Role: c.Role, Total: c.Total})
	}

	return totals, nil
}
