package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Errors returned by the Tagging write hooks.
var (
	ErrNoTarget        = errors.New("tagging must reference a target")
	ErrMultipleTargets = errors.New("tagging must reference exactly one target")
	ErrUnknownKind     = errors.New("unknown tagging target kind")
)

// TargetKind discriminates the entity a Tagging points at.
type TargetKind string

const (
	TargetIcon    TargetKind = "icon"
	TargetCard    TargetKind = "card"
	TargetLanyard TargetKind = "lanyard"
)

// ParseTargetKind validates a client-supplied kind string.
func ParseTargetKind(s string) (TargetKind, error) {
	switch TargetKind(s) {
	case TargetIcon, TargetCard, TargetLanyard:
		return TargetKind(s), nil
	}
	return "", ErrUnknownKind
}

// TaggingTarget is the tagged-union view of a Tagging's referent: one kind,
// one id. Storage keeps three nullable foreign keys underneath.
type TaggingTarget struct {
	Kind TargetKind
	ID   uint64
}

// Tagging links one Tag to exactly one of {Icon, Card, Lanyard}.
type Tagging struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	TagID     uint64  `gorm:"not null;index" json:"tagId"`
	CardID    *uint64 `gorm:"index" json:"cardId"`
	IconID    *uint64 `gorm:"index" json:"iconId"`
	LanyardID *uint64 `gorm:"index" json:"lanyardId"`
	AuthorID  int64   `gorm:"not null;index" json:"authorId"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Tag *Tag `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}

// TableName overrides the table name for Tagging
func (Tagging) TableName() string {
	return "taggings"
}

// NewTagging builds a row for the given tag, target, and owning author id.
func NewTagging(tagID uint64, target TaggingTarget, authorID int64) (*Tagging, error) {
	t := &Tagging{TagID: tagID, AuthorID: authorID}
	if err := t.SetTarget(target); err != nil {
		return nil, err
	}
	return t, nil
}

// SetTarget points the Tagging at target, clearing the other two references.
func (t *Tagging) SetTarget(target TaggingTarget) error {
	t.CardID, t.IconID, t.LanyardID = nil, nil, nil
	id := target.ID
	switch target.Kind {
	case TargetCard:
		t.CardID = &id
	case TargetIcon:
		t.IconID = &id
	case TargetLanyard:
		t.LanyardID = &id
	default:
		return ErrUnknownKind
	}
	return nil
}

// Target returns the tagged-union view of the referent. ok is false when the
// row references nothing and is due for cleanup.
func (t *Tagging) Target() (TaggingTarget, bool) {
	switch {
	case t.CardID != nil:
		return TaggingTarget{Kind: TargetCard, ID: *t.CardID}, true
	case t.IconID != nil:
		return TaggingTarget{Kind: TargetIcon, ID: *t.IconID}, true
	case t.LanyardID != nil:
		return TaggingTarget{Kind: TargetLanyard, ID: *t.LanyardID}, true
	}
	return TaggingTarget{}, false
}

func (t *Tagging) referenceCount() int {
	n := 0
	if t.CardID != nil {
		n++
	}
	if t.IconID != nil {
		n++
	}
	if t.LanyardID != nil {
		n++
	}
	return n
}

// BeforeCreate rejects rows that reference zero or multiple targets.
func (t *Tagging) BeforeCreate(tx *gorm.DB) error {
	switch n := t.referenceCount(); {
	case n == 0:
		return ErrNoTarget
	case n > 1:
		return ErrMultipleTargets
	}
	return nil
}

// BeforeUpdate rejects updates that would leave multiple targets set. A
// zero-target update is allowed through so AfterUpdate can reap the row.
func (t *Tagging) BeforeUpdate(tx *gorm.DB) error {
	if t.referenceCount() > 1 {
		return ErrMultipleTargets
	}
	return nil
}

// AfterUpdate drops the row when an update leaves it referencing nothing.
// A tagging that points at nothing is garbage.
func (t *Tagging) AfterUpdate(tx *gorm.DB) error {
	if t.referenceCount() == 0 {
		return tx.Session(&gorm.Session{NewDB: true, SkipHooks: true}).
			Delete(&Tagging{}, t.ID).Error
	}
	return nil
}
