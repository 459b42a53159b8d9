package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/HeetJani123/ethos-web-collective/internal/models"
	"github.com/HeetJani123/ethos-web-collective/internal/storage"
)

// SaveProfile сохраняет новый профиль.
// Повторная вставка по user_id — storage.ErrAlreadyExists.
func (s *Storage) SaveProfile(ctx context.Context, profile *models.Profile) error {
	const op = "storage.postgres.SaveProfile"

	_, err := s.db.Exec(ctx, `
	INSERT INTO profiles (user_id, username, is_member)
	VALUES ($1, $2, $3)
	`, profile.UserID, profile.Username, profile.IsMember)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ProfileByID возвращает профиль по идентификатору пользователя.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) ProfileByID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	const op = "storage.postgres.ProfileByID"

	var profile models.Profile
	err := s.db.QueryRow(ctx, `
	SELECT user_id, username, is_member, created_at, updated_at
	FROM profiles
	WHERE user_id = $1
	`, userID).Scan(
		&profile.UserID,
		&profile.Username,
		&profile.IsMember,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	profile.CreatedAt = profile.CreatedAt.UTC()
	profile.UpdatedAt = profile.UpdatedAt.UTC()

	return &profile, nil
}

// UsernamesByIDs возвращает отображение user_id -> username одной выборкой
// (батч-разрешение имён авторов комментариев).
// Отсутствующие идентификаторы в результат не попадают.
func (s *Storage) UsernamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	const op = "storage.postgres.UsernamesByIDs"

	result := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := s.db.Query(ctx, `
	SELECT user_id, username
	FROM profiles
	WHERE user_id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var username string
		if scanErr := rows.Scan(&id, &username); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		result[id] = username
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return result, nil
}

// SetMembership выставляет флаг членства профиля.
// Отсутствие профиля — storage.ErrNotFound.
func (s *Storage) SetMembership(ctx context.Context, userID uuid.UUID, member bool) error {
	const op = "storage.postgres.SetMembership"

	tag, err := s.db.Exec(ctx, `
	UPDATE profiles SET is_member = $2, updated_at = now()
	WHERE user_id = $1
	`, userID, member)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// IsJournalAdmin сообщает, входит ли пользователь в allow-list journal_admins.
func (s *Storage) IsJournalAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	const op = "storage.postgres.IsJournalAdmin"

	var exists bool
	err := s.db.QueryRow(ctx, `
	SELECT EXISTS (
		SELECT 1 FROM journal_admins WHERE user_id = $1
	)
	`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}
