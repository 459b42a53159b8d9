package models

import (
	"time"

	"github.com/google/uuid"
)

// User — учётная запись.
// PasswordHash — bcrypt; наружу ни в каком виде не отдаётся.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity — аутентифицированная личность текущего запроса.
// Кладётся в контекст мидлваром AuthBearer после проверки access-токена.
type Identity struct {
	UserID uuid.UUID
	Email  string
}
