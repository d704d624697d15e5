package models

import (
	"time"
)

// OAuthToken records an access token issued through the OAuth2 password grant
type OAuthToken struct {
	ID          uint   `gorm:"primaryKey"`
	ClientID    string `gorm:"not null"`
	Subject     string `gorm:"not null"`
	AccessToken string `gorm:"uniqueIndex;not null"`
	Scopes      string
	IssuedAt    time.Time `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}
