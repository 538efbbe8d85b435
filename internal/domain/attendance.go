package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Attendance is one event pushed by a device. Rows are append-only and never
// updated. VisitorID is nil when the device reported an idcard number we do
// not know; the raw capture is kept for later reconciliation.
type Attendance struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	VisitorID *uint          `json:"visitorId"`
	DeviceID  uuid.UUID      `json:"deviceId" gorm:"type:uuid;not null"`
	GroupID   string         `json:"groupId"`
	RecordID  string         `json:"recordId"`
	ImgBase64 string         `json:"imgBase64" gorm:"type:text"`
	Time      time.Time      `json:"time" gorm:"not null"`
	Type      string         `json:"type"`
	Extra     datatypes.JSON `json:"extra" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"createdAt"`

	Visitor *Visitor `json:"visitor,omitempty" gorm:"foreignKey:VisitorID"`
	Device  *Device  `json:"device,omitempty" gorm:"foreignKey:DeviceID"`
}
