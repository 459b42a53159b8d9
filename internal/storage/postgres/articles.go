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

// articleColumns — единый список колонок таблицы articles,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const articleColumns = `
id, title, excerpt, content, author_id, author_name, category, tags, published_at, likes
`

// scanArticle сканирует одну строку статьи из результата запроса в доменную модель.
func scanArticle(row pgx.Row) (*models.Article, error) {
	var article models.Article

	if err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Excerpt,
		&article.Content,
		&article.AuthorID,
		&article.AuthorName,
		&article.Category,
		&article.Tags,
		&article.PublishedAt,
		&article.Likes,
	); err != nil {
		return nil, err
	}

	article.PublishedAt = article.PublishedAt.UTC()

	return &article, nil
}

// SaveArticle сохраняет новую статью и возвращает её с серверными полями.
// Нарушение FK по author_id трактуется как отсутствие пользователя — storage.ErrNotFound.
func (s *Storage) SaveArticle(ctx context.Context, article *models.Article) (*models.Article, error) {
	const op = "storage.postgres.SaveArticle"

	row := s.db.QueryRow(ctx, `
	INSERT INTO articles (id, title, excerpt, content, author_id, author_name, category, tags, published_at, likes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0)
	RETURNING `+articleColumns,
		article.ID, article.Title, article.Excerpt, article.Content,
		article.AuthorID, article.AuthorName, article.Category, article.Tags,
		article.PublishedAt.UTC(),
	)

	saved, err := scanArticle(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.ForeignKeyViolation:
				return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
			case pgerrcode.UniqueViolation:
				return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
			}
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

// ListArticles возвращает все статьи журнала, новые сверху.
// Сортировка фиксирована: published_at DESC, id DESC.
func (s *Storage) ListArticles(ctx context.Context) ([]models.Article, error) {
	const op = "storage.postgres.ListArticles"

	rows, err := s.db.Query(ctx, `
	SELECT `+articleColumns+`
	FROM articles
	ORDER BY published_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		article, scanErr := scanArticle(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		items = append(items, *article)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}

// ArticleByID возвращает статью по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) ArticleByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	const op = "storage.postgres.ArticleByID"

	row := s.db.QueryRow(ctx, `
	SELECT `+articleColumns+`
	FROM articles
	WHERE id = $1
	`, id)

	article, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}
