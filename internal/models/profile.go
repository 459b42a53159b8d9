package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile — внутренняя доменная модель профиля.
// Создаётся вместе с учётной записью при регистрации.
// IsMember — флаг членства: открывает форму публикации статей;
// выставляется только администраторами (см. journal_admins).
type Profile struct {
	UserID    uuid.UUID
	Username  string
	IsMember  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
