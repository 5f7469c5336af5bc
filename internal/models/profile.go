package models

import "time"

const (
	GenderMale   = "M"
	GenderFemale = "F"
)

type Profile struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	User   *User      `json:"user,omitempty"`
	Info   string     `gorm:"size:1000" json:"info"`
	DOB    *time.Time `json:"dob"`
	Gender string     `gorm:"size:20;default:'M'" json:"gender"`
	Avatar string     `json:"avatar"`
}
