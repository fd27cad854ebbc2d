package models

import "time"

// Lanyard is an ordered collection of Cards.
type Lanyard struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	AuthorID    int64  `gorm:"not null;index" json:"authorId"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Cards    []Card    `gorm:"foreignKey:LanyardID" json:"cards,omitempty"`
	Taggings []Tagging `gorm:"foreignKey:LanyardID;constraint:OnDelete:CASCADE" json:"taggings,omitempty"`
}

// TableName overrides the table name for Lanyard
func (Lanyard) TableName() string {
	return "lanyards"
}
