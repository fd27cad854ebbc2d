package models

import "time"

// Tag is a named label. Names are unique per author.
type Tag struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"size:255;not null;index:idx_tag_author_name,unique" json:"name"`
	AuthorID  int64  `gorm:"not null;index:idx_tag_author_name,unique" json:"authorId"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Taggings []Tagging `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
