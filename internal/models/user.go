package models

import "time"

// User is a registered account. PasswordHash and Email never serialize; the
// session endpoints return a SafeUser instead.
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string `gorm:"size:255;not null" json:"firstName"`
	LastName     string `gorm:"size:255;not null" json:"lastName"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"-"`
	PasswordHash []byte `gorm:"not null" json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Icons    []Icon    `gorm:"foreignKey:AuthorID" json:"-"`
	Cards    []Card    `gorm:"foreignKey:AuthorID" json:"-"`
	Lanyards []Lanyard `gorm:"foreignKey:AuthorID" json:"-"`
	Tags     []Tag     `gorm:"foreignKey:AuthorID" json:"-"`
	Taggings []Tagging `gorm:"foreignKey:AuthorID" json:"-"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// SafeUser is the client-visible projection of a User.
type SafeUser struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Safe returns the projection of u that may be sent to its own session.
func (u *User) Safe() SafeUser {
	return SafeUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
