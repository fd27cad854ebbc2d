package models

import "time"

// Card is a single named unit referencing exactly one Icon and optionally the
// Lanyard that contains it. LanyardID is exclusive-owned: at most one Lanyard
// claims a Card at any time.
type Card struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Text      string  `gorm:"size:255" json:"text"`
	IconID    uint64  `gorm:"not null;index" json:"iconId"`
	LanyardID *uint64 `gorm:"index" json:"lanyardId"`
	AuthorID  int64   `gorm:"not null;index" json:"authorId"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Taggings []Tagging `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"taggings,omitempty"`
}

// TableName overrides the table name for Card
func (Card) TableName() string {
	return "cards"
}
