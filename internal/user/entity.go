package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	GoogleID                    string     `gorm:"column:google_id;uniqueIndex;not null" json:"-"`
	Email                       string     `gorm:"not null" json:"email"`
	Name                        string     `json:"name"`
	Picture                     string     `json:"picture,omitempty"`
	Role                        string     `gorm:"not null;default:user" json:"role"`
	EncryptedGoogleAccessToken  string     `gorm:"column:encrypted_google_access_token" json:"-"`
	EncryptedGoogleRefreshToken string     `gorm:"column:encrypted_google_refresh_token" json:"-"`
	GoogleTokenExpiry           *time.Time `gorm:"column:google_token_expiry" json:"-"`
	CreatedAt                   time.Time  `json:"created_at"`
	UpdatedAt                   time.Time  `json:"updated_at"`
}
