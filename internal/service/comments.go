package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/HeetJani123/ethos-web-collective/internal/models"
	"github.com/HeetJani123/ethos-web-collective/internal/storage"
	"github.com/HeetJani123/ethos-web-collective/pkg/log"
)

// unknownAuthor подставляется, когда профиль автора комментария не найден
// (удалённая учётная запись).
const unknownAuthor = "Unknown"

// CreateCommentInput — публикация комментария к статье.
type CreateCommentInput struct {
	ArticleID string
	AuthorID  uuid.UUID
	Content   string
}

// CreateComment сохраняет комментарий.
//
// Пустой или пробельный контент отклоняется ДО любого похода в хранилище
// (ErrInvalidArgument). Отсутствие статьи — ErrNotFound. Комментарий
// неизменяем; выдача обновляется перечитыванием списка клиентом.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*models.Comment, error) {
	const op = "service.comments.CreateComment"

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if input.AuthorID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	articleID, err := uuid.Parse(strings.TrimSpace(input.ArticleID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	comment := &models.Comment{
		ID:        uuid.New(),
		ArticleID: articleID,
		AuthorID:  input.AuthorID,
		Content:   content,
	}

	saved, err := s.storage.SaveComment(ctx, comment)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.From(ctx).Error("storage error on SaveComment", "op", op, "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if s.metrics != nil {
		s.metrics.RecordCommentPosted()
	}

	// Имя автора нужно фронту сразу в ответе; недоступность профиля
	// не должна ронять уже сохранённый комментарий.
	saved.AuthorName = unknownAuthor
	if names, err := s.storage.UsernamesByIDs(ctx, []uuid.UUID{saved.AuthorID}); err == nil {
		if name, ok := names[saved.AuthorID]; ok {
			saved.AuthorName = name
		}
	}

	return saved, nil
}

// ListComments возвращает комментарии статьи старыми сверху, с разрешёнными
// именами авторов.
//
// Имена разрешаются одним батч-запросом по различным author_id
// (UsernamesByIDs), а не по запросу на комментарий. Для авторов без
// профиля подставляется unknownAuthor.
func (s *Service) ListComments(ctx context.Context, articleID string) ([]models.Comment, error) {
	const op = "service.comments.ListComments"

	id, err := uuid.Parse(strings.TrimSpace(articleID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	comments, err := s.storage.CommentsByArticle(ctx, id)
	if err != nil {
		log.From(ctx).Error("storage error on CommentsByArticle", "op", op, "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if len(comments) == 0 {
		return []models.Comment{}, nil
	}

	names, err := s.storage.UsernamesByIDs(ctx, distinctAuthorIDs(comments))
	if err != nil {
		log.From(ctx).Error("storage error on UsernamesByIDs", "op", op, "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	for i := range comments {
		if name, ok := names[comments[i].AuthorID]; ok {
			comments[i].AuthorName = name
		} else {
			comments[i].AuthorName = unknownAuthor
		}
	}

	return comments, nil
}

// distinctAuthorIDs — различные author_id в порядке первого появления.
func distinctAuthorIDs(comments []models.Comment) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(comments))
	ids := make([]uuid.UUID, 0, len(comments))

	for _, c := range comments {
		if _, ok := seen[c.AuthorID]; ok {
			continue
		}

		seen[c.AuthorID] = struct{}{}
		ids = append(ids, c.AuthorID)
	}

	return ids
}
