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

// ToggleLike переключает лайк пользователя на статье и возвращает итоговое
// состояние (liked + счётчик).
//
// Связь и счётчик меняются в одной транзакции хранилища, поэтому частичный
// сбой не оставляет расхождения. Двойное переключение возвращает состояние
// к исходному: нетто-изменение счётчика — ноль.
func (s *Service) ToggleLike(ctx context.Context, articleID string, userID uuid.UUID) (*models.LikeState, error) {
	const op = "service.likes.ToggleLike"

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	id, err := uuid.Parse(strings.TrimSpace(articleID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	state, err := s.storage.ToggleLike(ctx, id, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.From(ctx).Error("storage error on ToggleLike", "op", op, "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if s.metrics != nil {
		s.metrics.RecordLikeToggled(state.Liked)
	}

	return state, nil
}
