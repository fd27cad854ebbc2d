package models

import "time"

// Icon is a named image reference.
type Icon struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	ImageURL  string `gorm:"size:2048;not null" json:"imageUrl"`
	AuthorID  int64  `gorm:"not null;index" json:"authorId"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Cards    []Card    `gorm:"foreignKey:IconID;constraint:OnDelete:CASCADE" json:"-"`
	Taggings []Tagging `gorm:"foreignKey:IconID;constraint:OnDelete:CASCADE" json:"taggings,omitempty"`
}

// TableName overrides the table name for Icon
func (Icon) TableName() string {
	return "icons"
}
