package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/HeetJani123/ethos-web-collective/internal/models"
	"github.com/HeetJani123/ethos-web-collective/internal/storage"
	"github.com/HeetJani123/ethos-web-collective/pkg/log"
)

// ProfileByID возвращает профиль по идентификатору пользователя.
func (s *Service) ProfileByID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	const op = "service.profiles.ProfileByID"

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	profile, err := s.storage.ProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.From(ctx).Error("storage error on ProfileByID", "op", op, "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return profile, nil
}

// GrantMembership выставляет флаг членства профиля target.
//
// Авторизация: вызывающий должен входить в allow-list journal_admins —
// иначе ErrPermissionDenied. Отсутствие профиля target — ErrNotFound.
func (s *Service) GrantMembership(ctx context.Context, adminID, targetID uuid.UUID, member bool) error {
	const op = "service.profiles.GrantMembership"

	lg := log.From(ctx).With("op", op, "admin_id", adminID.String(), "target_id", targetID.String())

	if adminID == uuid.Nil || targetID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	isAdmin, err := s.storage.IsJournalAdmin(ctx, adminID)
	if err != nil {
		lg.Error("storage error on IsJournalAdmin", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if !isAdmin {
		lg.Warn("membership grant denied: caller is not a journal admin")

		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if err := s.storage.SetMembership(ctx, targetID, member); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on SetMembership", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("membership updated", "member", member)

	return nil
}
