package models

import (
	"time"

	"github.com/google/uuid"
)

// TokenPair — пара access+refresh, выдаваемая при входе/регистрации/обновлении.
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// RefreshToken — серверное состояние refresh-токена.
// Хранится только sha256-хэш (base64url), сам токен клиенту.
type RefreshToken struct {
	RefreshTokenHash string
	UserID           uuid.UUID
	CreatedAt        time.Time
	ExpiresAt        time.Time
	Revoked          bool
}
