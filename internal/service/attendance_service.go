package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/santoso/visitor-gate/internal/domain"
	"github.com/santoso/visitor-gate/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrInvalidEventTime = errors.New("invalid event time")

// AttendanceService ingests attendance events pushed by devices and serves
// the admin-facing report.
type AttendanceService struct {
	deviceRepo     repository.DeviceRepository
	visitorRepo    repository.VisitorRepository
	attendanceRepo repository.AttendanceRepository
}

func NewAttendanceService(deviceRepo repository.DeviceRepository, visitorRepo repository.VisitorRepository, attendanceRepo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		deviceRepo:     deviceRepo,
		visitorRepo:    visitorRepo,
		attendanceRepo: attendanceRepo,
	}
}

type UploadInput struct {
	GroupID      string
	DeviceKey    string
	IdcardNumber string
	RecordID     string
	ImgBase64    string
	// Time is the device-supplied event timestamp in epoch milliseconds.
	Time string
	Type string
	// Extra is an opaque device payload stored as-is, never interpreted.
	Extra string
}

// Upload stores one attendance event. Visitor resolution is best-effort: an
// unknown idcard number still records the event with a nil visitor id.
// Inserts are unconditional; a retried upload produces a second row (no
// recordId de-duplication, see DESIGN.md).
func (s *AttendanceService) Upload(ctx context.Context, input UploadInput) error {
	device, err := s.deviceRepo.GetByKey(ctx, input.DeviceKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownDevice
		}
		return err
	}

	var visitorID *uint
	visitor, err := s.visitorRepo.GetByIdcardNum(ctx, input.IdcardNumber)
	if err == nil {
		visitorID = &visitor.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	millis, err := strconv.ParseInt(input.Time, 10, 64)
	if err != nil {
		return ErrInvalidEventTime
	}

	attendance := &domain.Attendance{
		VisitorID: visitorID,
		DeviceID:  device.ID,
		GroupID:   input.GroupID,
		RecordID:  input.RecordID,
		ImgBase64: input.ImgBase64,
		Time:      time.UnixMilli(millis),
		Type:      input.Type,
	}
	if input.Extra != "" {
		attendance.Extra = datatypes.JSON(input.Extra)
	}

	return s.attendanceRepo.Create(ctx, attendance)
}

// Report returns a paginated attendance log, newest events first.
func (s *AttendanceService) Report(ctx context.Context, page, limit int) ([]*domain.Attendance, int64, error) {
	total, err := s.attendanceRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	attendances, err := s.attendanceRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}
