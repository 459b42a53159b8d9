package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/HeetJani123/ethos-web-collective/internal/models"
	"github.com/HeetJani123/ethos-web-collective/internal/storage"
	"github.com/HeetJani123/ethos-web-collective/pkg/log"
)

// Входные структуры сервисного слоя.

// ListArticlesInput — параметры фильтра выдачи журнала.
// Query — свободный текст (регистронезависимое вхождение в title/excerpt),
// Category — точное совпадение категории; пустая строка и "All" пропускают всё.
type ListArticlesInput struct {
	Query    string
	Category string
}

// CreateArticleInput — публикация новой статьи.
// Обязательны: AuthorID, Title, AuthorName, Content, Category.
type CreateArticleInput struct {
	AuthorID   uuid.UUID
	Title      string
	AuthorName string
	Excerpt    string
	Content    string
	Category   string
	Tags       []string
}

// ListArticles возвращает отфильтрованную выдачу журнала.
//
// Коллекция выбирается целиком (новые сверху, сортировка фиксирована
// хранилищем), фильтр применяется к полному набору — пагинации у журнала
// нет. Пустой результат — валидная выдача, а не ошибка.
func (s *Service) ListArticles(ctx context.Context, input ListArticlesInput) ([]models.Article, error) {
	const op = "service.articles.ListArticles"

	items, err := s.storage.ListArticles(ctx)
	if err != nil {
		log.From(ctx).Error("storage error on ListArticles", "op", op, "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	filtered := make([]models.Article, 0, len(items))
	for _, article := range items {
		if matchesFilter(&article, input.Query, input.Category) {
			filtered = append(filtered, article)
		}
	}

	return filtered, nil
}

// matchesFilter — предикат фильтра выдачи: регистронезависимое вхождение
// query в title ИЛИ excerpt, И совпадение категории (или "All"/пусто).
func matchesFilter(article *models.Article, query, category string) bool {
	if category != "" && category != models.CategoryAll && article.Category != category {
		return false
	}

	if query == "" {
		return true
	}

	q := strings.ToLower(query)

	return strings.Contains(strings.ToLower(article.Title), q) ||
		strings.Contains(strings.ToLower(article.Excerpt), q)
}

// ArticleByID возвращает статью по её строковому идентификатору вместе
// с признаком «лайкнул ли зритель» (viewer == nil для анонимного запроса).
// Некорректный формат id трактуется как «нет такой записи».
func (s *Service) ArticleByID(ctx context.Context, id string, viewer *models.Identity) (*models.ArticleView, error) {
	const op = "service.articles.ArticleByID"

	articleID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	article, err := s.storage.ArticleByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.From(ctx).Error("storage error on ArticleByID", "op", op, "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	view := models.ArticleView{Article: *article}

	if viewer != nil {
		liked, err := s.storage.HasLike(ctx, articleID, viewer.UserID)
		if err != nil {
			log.From(ctx).Error("storage error on HasLike", "op", op, "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		view.Liked = liked
	}

	return &view, nil
}

// CreateArticle публикует новую статью.
//
// Авторизация: у автора должен быть профиль с is_member=true — проверка
// серверная, клиентская блокировка формы ей не доверяется.
//
// Валидация:
//   - title, author_name, content, category обязательны (после TrimSpace);
//   - category должна входить в фиксированный набор;
//   - теги нормализуются: трим, пустые отбрасываются, дубликаты
//     подавляются с сохранением порядка первых вхождений.
//
// Контент (rich text) проходит санитизацию UGC-политикой.
// published_at выставляется сервером в UTC.
func (s *Service) CreateArticle(ctx context.Context, input CreateArticleInput) (*models.Article, error) {
	const op = "service.articles.CreateArticle"

	lg := log.From(ctx).With("op", op, "author_id", input.AuthorID.String())

	if input.AuthorID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	profile, err := s.storage.ProfileByID(ctx, input.AuthorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("author profile not found")

			return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
		}

		lg.Error("storage error on ProfileByID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if !profile.IsMember {
		lg.Warn("author is not a member")

		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	input.Title = strings.TrimSpace(input.Title)
	input.AuthorName = strings.TrimSpace(input.AuthorName)
	input.Excerpt = strings.TrimSpace(input.Excerpt)
	input.Category = strings.TrimSpace(input.Category)

	if input.Title == "" || input.AuthorName == "" || strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !models.IsValidCategory(input.Category) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	article := &models.Article{
		ID:          uuid.New(),
		Title:       input.Title,
		Excerpt:     input.Excerpt,
		Content:     s.sanitizer.Sanitize(input.Content),
		AuthorID:    input.AuthorID,
		AuthorName:  input.AuthorName,
		Category:    input.Category,
		Tags:        normalizeTags(input.Tags),
		PublishedAt: time.Now().UTC(),
	}

	saved, err := s.storage.SaveArticle(ctx, article)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on SaveArticle", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if s.metrics != nil {
		s.metrics.RecordArticlePublished(saved.Category)
	}

	return saved, nil
}

// normalizeTags — set-семантика тегов формы публикации:
// трим, отбрасывание пустых, подавление дубликатов с сохранением порядка.
func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}

		seen[tag] = struct{}{}
		result = append(result, tag)
	}

	return result
}
