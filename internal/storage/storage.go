// storage определяет контракты доступа к БД для ethos-сервиса.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/HeetJani123/ethos-web-collective/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности (email, PK лайка, хэш refresh-токена).
	ErrAlreadyExists = errors.New("already exists")
)

// ArticlesStorage описывает операции над сущностью models.Article.
type ArticlesStorage interface {
	// SaveArticle сохраняет новую статью и возвращает её с серверными полями из БД.
	SaveArticle(ctx context.Context, article *models.Article) (*models.Article, error)
	// ListArticles возвращает все статьи, отсортированные по published_at DESC, id DESC.
	// Пагинации нет: выдача журнала фильтруется целиком (см. service.ListArticles).
	ListArticles(ctx context.Context) ([]models.Article, error)
	// ArticleByID возвращает статью по идентификатору.
	// Если запись не найдена — ErrNotFound.
	ArticleByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
}

// CommentsStorage описывает операции над сущностью models.Comment.
type CommentsStorage interface {
	// SaveComment сохраняет комментарий. Отсутствие статьи-родителя — ErrNotFound.
	SaveComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	// CommentsByArticle возвращает все комментарии статьи, старые сверху
	// (created_at ASC, id ASC).
	CommentsByArticle(ctx context.Context, articleID uuid.UUID) ([]models.Comment, error)
}

// LikesStorage описывает операции над связью article_likes.
type LikesStorage interface {
	// ToggleLike атомарно переключает лайк: запись/удаление связи и
	// изменение счётчика articles.likes выполняются в одной транзакции.
	// Возвращает итоговое состояние. Отсутствие статьи — ErrNotFound.
	ToggleLike(ctx context.Context, articleID, userID uuid.UUID) (*models.LikeState, error)
	// HasLike сообщает, есть ли связь (articleID, userID).
	HasLike(ctx context.Context, articleID, userID uuid.UUID) (bool, error)
}

// ProfilesStorage описывает операции над профилями и списком администраторов.
type ProfilesStorage interface {
	// SaveProfile сохраняет новый профиль. Повтор по user_id — ErrAlreadyExists.
	SaveProfile(ctx context.Context, profile *models.Profile) error
	// ProfileByID возвращает профиль по идентификатору пользователя.
	ProfileByID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	// UsernamesByIDs возвращает отображение user_id -> username одной выборкой.
	// Отсутствующие идентификаторы в результат не попадают.
	UsernamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
	// SetMembership выставляет флаг членства. Отсутствие профиля — ErrNotFound.
	SetMembership(ctx context.Context, userID uuid.UUID, member bool) error
	// IsJournalAdmin сообщает, входит ли пользователь в allow-list journal_admins.
	IsJournalAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// UsersStorage описывает операции над учётными записями.
type UsersStorage interface {
	// SaveUser сохраняет нового пользователя. Занятый email — ErrAlreadyExists.
	SaveUser(ctx context.Context, user *models.User) error
	// SaveUserWithProfile сохраняет пользователя и его профиль в одной
	// транзакции: частичный сбой откатывает обе записи, брошенных учёток
	// без профиля не остаётся. Занятый email — ErrAlreadyExists.
	SaveUserWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
	// UserByEmail возвращает пользователя по нормализованному email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID возвращает пользователя по идентификатору.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// TokensStorage описывает операции над refresh-токенами.
type TokensStorage interface {
	// SaveRefreshToken сохраняет хэш нового refresh-токена.
	// Коллизия хэша — ErrAlreadyExists.
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error
	// RefreshTokenByHash возвращает состояние токена по хэшу.
	RefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	// RevokeRefreshToken помечает токен отозванным.
	// Возвращает false, если токен уже был отозван ранее.
	RevokeRefreshToken(ctx context.Context, hash string) (bool, error)
}

// Storage задаёт полный контракт доступа к хранилищу ethos-сервиса.
type Storage interface {
	ArticlesStorage
	CommentsStorage
	LikesStorage
	ProfilesStorage
	UsersStorage
	TokensStorage
	Close()
}
