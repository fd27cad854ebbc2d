package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mylanyard/server/internal/config"
	"github.com/mylanyard/server/internal/models"
	"github.com/mylanyard/server/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignupInput is the payload for account creation.
type SignupInput struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
}

// ProfileInput is the payload for profile edits.
type ProfileInput struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
}

// PasswordInput is the payload for password changes.
type PasswordInput struct {
	Current string `json:"current" validate:"required,min=6,max=72"`
	Changed string `json:"changed" validate:"required,min=6,max=72"`
}

// Signup creates a new account. Duplicate emails conflict.
func Signup(db *gorm.DB, input SignupInput) (*models.User, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, types.NewConflict(fmt.Sprintf("%s already in use", input.Email))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Login authenticates by email credential and password. The same error comes
// back for an unknown email and a wrong password.
func Login(db *gorm.DB, credential, password string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", credential).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewUnauthenticated()
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, types.NewUnauthenticated()
	}

	return &user, nil
}

// GetUser loads a user by id.
func GetUser(db *gorm.DB, id uint64) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFound("User")
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile edits the caller's display fields and email. A different
// user's email conflicts.
func UpdateProfile(db *gorm.DB, userID uint64, input ProfileInput) (*models.User, error) {
	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ? AND id <> ?", input.Email, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, types.NewConflict(fmt.Sprintf("%s already in use", input.Email))
	}

	user, err := GetUser(db, userID)
	if err != nil {
		return nil, err
	}

	if err := db.Model(user).Updates(map[string]interface{}{
		"first_name": input.FirstName,
		"last_name":  input.LastName,
		"email":      input.Email,
	}).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePassword verifies the current password before storing the new digest.
func ChangePassword(db *gorm.DB, userID uint64, input PasswordInput) (*models.User, error) {
	user, err := GetUser(db, userID)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(input.Current)) != nil {
		return nil, types.NewUnauthenticated()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Changed), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if err := db.Model(user).Update("password_hash", hash).Error; err != nil {
		return nil, err
	}

	return user, nil
}

type sessionClaims struct {
	UserID uint64 `json:"uid"`
	jwt.RegisteredClaims
}

// IssueToken signs a session token for user.
func IssueToken(cfg *config.Config, user *models.User) (string, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SessionSecret))
}

// ParseToken validates a session token and returns the user id it names.
func ParseToken(cfg *config.Config, tokenString string) (uint64, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, types.NewUnauthenticated()
	}
	return claims.UserID, nil
}
