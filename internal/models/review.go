package models

type Review struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"not null" json:"text"`
	AuthorID *uint  `gorm:"index" json:"author_id"`
	Author   *User  `json:"author,omitempty"`
}
