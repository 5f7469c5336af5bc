package models

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `json:"description"`
	Price       int       `gorm:"not null;default:0" json:"price"`
	Image       string    `json:"image"`
	CategoryID  uint      `gorm:"index;not null" json:"category_id"`
	Category    *Category `json:"category,omitempty"`
	ProviderID  *uint     `gorm:"index" json:"provider_id"`
	Provider    *Provider `json:"provider,omitempty"`
}
