package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment — внутренняя доменная модель комментария.
// Важно:
//   - комментарий неизменяем после создания (редактирования/удаления нет);
//   - AuthorName не хранится в таблице comments: сервисный слой разрешает
//     имена батч-запросом по различным AuthorID (см. service.ListComments);
//   - выдача упорядочена по created_at ASC, id ASC (старые сверху).
type Comment struct {
	ID         uuid.UUID
	ArticleID  uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Content    string
	CreatedAt  time.Time
}
