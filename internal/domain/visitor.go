package domain

import "time"

// Visitor is a person authorized for access. The serial primary key is the
// stable ascending ordering key the roster sync protocol pages over.
type Visitor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	IdcardNum string    `json:"idcardNum" gorm:"uniqueIndex;not null"`
	ImgBase64 string    `json:"imgBase64" gorm:"type:text"`
	Type      *int      `json:"type"`
	Passtime  string    `json:"passtime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
