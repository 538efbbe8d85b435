package domain

import (
	"time"

	"github.com/google/uuid"
)

// Device is a physical access terminal. DeviceKey is its sole credential for
// the sync protocol and must stay unique and unguessable.
type Device struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	DeviceKey string    `json:"deviceKey" gorm:"uniqueIndex;not null"`
	GroupID   string    `json:"groupId"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
