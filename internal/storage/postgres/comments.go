package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/HeetJani123/ethos-web-collective/internal/models"
	"github.com/HeetJani123/ethos-web-collective/internal/storage"
)

// SaveComment сохраняет комментарий и возвращает его с серверным created_at.
// Нарушение FK по article_id означает, что статьи нет — storage.ErrNotFound.
func (s *Storage) SaveComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	const op = "storage.postgres.SaveComment"

	saved := *comment
	err := s.db.QueryRow(ctx, `
	INSERT INTO comments (id, article_id, author_id, content)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at
	`, comment.ID, comment.ArticleID, comment.AuthorID, comment.Content,
	).Scan(&saved.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	saved.CreatedAt = saved.CreatedAt.UTC()

	return &saved, nil
}

// CommentsByArticle возвращает все комментарии статьи, старые сверху.
// Сортировка фиксирована: created_at ASC, id ASC.
func (s *Storage) CommentsByArticle(ctx context.Context, articleID uuid.UUID) ([]models.Comment, error) {
	const op = "storage.postgres.CommentsByArticle"

	rows, err := s.db.Query(ctx, `
	SELECT id, article_id, author_id, content, created_at
	FROM comments
	WHERE article_id = $1
	ORDER BY created_at ASC, id ASC
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Comment
	for rows.Next() {
		var comment models.Comment
		if scanErr := rows.Scan(
			&comment.ID,
			&comment.ArticleID,
			&comment.AuthorID,
			&comment.Content,
			&comment.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		comment.CreatedAt = comment.CreatedAt.UTC()
		items = append(items, comment)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}
