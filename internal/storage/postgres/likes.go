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

// ToggleLike атомарно переключает лайк пользователя на статье.
//
// Связь article_likes и счётчик articles.likes меняются в одной транзакции,
// поэтому счётчик не может разойтись с числом связей: частичный сбой
// откатывает обе записи. Повторное переключение возвращает состояние
// к исходному (двойной toggle — нетто-ноль по счётчику).
func (s *Storage) ToggleLike(ctx context.Context, articleID, userID uuid.UUID) (*models.LikeState, error) {
	const op = "storage.postgres.ToggleLike"

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
	DELETE FROM article_likes
	WHERE article_id = $1 AND user_id = $2
	`, articleID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: delete: %w", op, err)
	}

	state := models.LikeState{}

	if tag.RowsAffected() > 0 {
		// Связь была — лайк снят, счётчик вниз.
		state.Liked = false
		err = tx.QueryRow(ctx, `
		UPDATE articles SET likes = GREATEST(likes - 1, 0)
		WHERE id = $1
		RETURNING likes
		`, articleID).Scan(&state.Likes)
	} else {
		// Связи не было — лайк ставится, счётчик вверх.
		state.Liked = true
		if _, insErr := tx.Exec(ctx, `
		INSERT INTO article_likes (article_id, user_id)
		VALUES ($1, $2)
		`, articleID, userID); insErr != nil {
			var pgErr *pgconn.PgError
			if errors.As(insErr, &pgErr) {
				switch pgErr.Code {
				case pgerrcode.ForeignKeyViolation:
					return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
				case pgerrcode.UniqueViolation:
					// Параллельный toggle того же пользователя успел вставить
					// связь первым: наша транзакция дождалась его коммита и
					// упёрлась в PK. Это не ошибка клиента — отдаём текущее
					// состояние вместо 500.
					_ = tx.Rollback(ctx)
					return s.likeState(ctx, articleID, userID)
				}
			}

			return nil, fmt.Errorf("%s: insert: %w", op, insErr)
		}

		err = tx.QueryRow(ctx, `
		UPDATE articles SET likes = likes + 1
		WHERE id = $1
		RETURNING likes
		`, articleID).Scan(&state.Likes)
	}

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: counter: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return &state, nil
}

// likeState читает актуальное состояние лайка вне транзакции.
func (s *Storage) likeState(ctx context.Context, articleID, userID uuid.UUID) (*models.LikeState, error) {
	const op = "storage.postgres.likeState"

	var state models.LikeState
	err := s.db.QueryRow(ctx, `
	SELECT
		EXISTS (
			SELECT 1 FROM article_likes
			WHERE article_id = $1 AND user_id = $2
		),
		a.likes
	FROM articles a
	WHERE a.id = $1
	`, articleID, userID).Scan(&state.Liked, &state.Likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &state, nil
}

// HasLike сообщает, лайкнул ли пользователь статью.
func (s *Storage) HasLike(ctx context.Context, articleID, userID uuid.UUID) (bool, error) {
	const op = "storage.postgres.HasLike"

	var exists bool
	err := s.db.QueryRow(ctx, `
	SELECT EXISTS (
		SELECT 1 FROM article_likes
		WHERE article_id = $1 AND user_id = $2
	)
	`, articleID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}
