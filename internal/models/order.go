package models

type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	User        *User  `json:"user,omitempty"`
	ProductName string `gorm:"size:100;not null;default:'TIE-DYE CROP TOP'" json:"product_name"`
	Count       int    `gorm:"not null;default:1" json:"count"`
}
