package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"strconv"

	"github.com/santoso/visitor-gate/internal/domain"
	"github.com/santoso/visitor-gate/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMissingParameters = errors.New("missing required parameters")
	ErrUnknownDevice     = errors.New("invalid device key")
	ErrVisitorNotFound   = errors.New("visitor not found")
)

// RosterService serves the pull-based sync protocol devices use to fetch the
// authorized-visitor list and detect changed records by fingerprint.
type RosterService struct {
	deviceRepo  repository.DeviceRepository
	visitorRepo repository.VisitorRepository
}

func NewRosterService(deviceRepo repository.DeviceRepository, visitorRepo repository.VisitorRepository) *RosterService {
	return &RosterService{
		deviceRepo:  deviceRepo,
		visitorRepo: visitorRepo,
	}
}

// PersonRecord is one roster entry as a device consumes it.
type PersonRecord struct {
	IdcardNum string `json:"idcardNum"`
	Name      string `json:"name"`
	ImgBase64 string `json:"imgBase64"`
	Type      *int   `json:"type"`
	Passtime  string `json:"passtime"`
	MD5       string `json:"md5"`
}

// Fingerprint computes the composite change-detection hash of a visitor.
// Component order is name, image, type, passtime; each component is md5 of
// the field's string form (md5 of "" when absent), the composite is md5 of
// the four lowercase-hex digests concatenated. Devices cache this value and
// re-pull a record only when it changes, so the algorithm is a wire contract
// and must not be altered.
func Fingerprint(v *domain.Visitor) string {
	typeStr := ""
	if v.Type != nil {
		typeStr = strconv.Itoa(*v.Type)
	}

	composite := md5hex(v.Name) + md5hex(v.ImgBase64) + md5hex(typeStr) + md5hex(v.Passtime)
	return md5hex(composite)
}

func md5hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// ResolveDevice maps a device key to its registered device. Every
// device-facing operation goes through here before touching visitor or
// attendance data.
func (s *RosterService) ResolveDevice(ctx context.Context, deviceKey string) (*domain.Device, error) {
	device, err := s.deviceRepo.GetByKey(ctx, deviceKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownDevice
		}
		return nil, err
	}
	return device, nil
}

// GetPersonList returns one roster page. An empty roster is a success with
// total 0, not an error. groupID is required by the protocol but not used as
// a filter; see DESIGN.md.
func (s *RosterService) GetPersonList(ctx context.Context, groupID, deviceKey string, page, pageSize int) (int64, []PersonRecord, error) {
	if groupID == "" || deviceKey == "" || page < 1 || pageSize < 1 {
		return 0, nil, ErrMissingParameters
	}

	if _, err := s.ResolveDevice(ctx, deviceKey); err != nil {
		return 0, nil, err
	}

	total, err := s.visitorRepo.CountAll(ctx)
	if err != nil {
		return 0, nil, err
	}

	visitors, err := s.visitorRepo.ListRoster(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return 0, nil, err
	}

	records := make([]PersonRecord, len(visitors))
	for i, v := range visitors {
		records[i] = toPersonRecord(v)
	}

	return total, records, nil
}

// GetPersonInfo returns a single roster record by idcard number.
func (s *RosterService) GetPersonInfo(ctx context.Context, groupID, deviceKey, idcardNum string) (*PersonRecord, error) {
	if groupID == "" || deviceKey == "" || idcardNum == "" {
		return nil, ErrMissingParameters
	}

	if _, err := s.ResolveDevice(ctx, deviceKey); err != nil {
		return nil, err
	}

	visitor, err := s.visitorRepo.GetByIdcardNum(ctx, idcardNum)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVisitorNotFound
		}
		return nil, err
	}

	record := toPersonRecord(visitor)
	return &record, nil
}

func toPersonRecord(v *domain.Visitor) PersonRecord {
	return PersonRecord{
		IdcardNum: v.IdcardNum,
		Name:      v.Name,
		ImgBase64: v.ImgBase64,
		Type:      v.Type,
		Passtime:  v.Passtime,
		MD5:       Fingerprint(v),
	}
}
