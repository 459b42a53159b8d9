// service содержит бизнес-логику ethos-сервиса:
// журнал (статьи/комментарии/лайки), профили и членство,
// регистрацию/аутентификацию пользователей и выпуск/проверку токенов.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Ошибки возвращаются сентинелами и далее маппятся HTTP-слоем
//     (см. комментарии к переменным ошибок ниже и пакет http/httperr).
package service

import (
	"errors"

	"github.com/microcosm-cc/bluemonday"

	"github.com/HeetJani123/ethos-web-collective/internal/cache"
	"github.com/HeetJani123/ethos-web-collective/internal/config"
	"github.com/HeetJani123/ethos-web-collective/internal/metrics"
	"github.com/HeetJani123/ethos-web-collective/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует (статья/профиль/пользователь).
	// Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument — некорректные входные аргументы
	// (пустые обязательные поля, пустой комментарий, неизвестная категория).
	// Транспорт: HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyExists — конфликт уникальности. Транспорт: HTTP 409.
	ErrAlreadyExists = errors.New("already exists")

	// ErrPermissionDenied — операция требует членства или прав администратора.
	// Транспорт: HTTP 403.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен (access/refresh) некорректен по формату/подписи
	// или отсутствует в хранилище. Транспорт: HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked — токен отозван (logout/rotation) и недействителен
	// независимо от срока. Транспорт: HTTP 401.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrEmailTaken — e-mail уже занят другим пользователем. Транспорт: HTTP 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrRefreshTokenCollision — исчерпаны попытки сгенерировать уникальный
	// refresh-токен. Транспорт: HTTP 500.
	ErrRefreshTokenCollision = errors.New("refresh token collision")

	// ErrInvalidEmail — e-mail имеет некорректный формат. Транспорт: HTTP 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword — пароль не удовлетворяет политикам сложности.
	// Транспорт: HTTP 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmptyPassword — пароль пустой. Транспорт: HTTP 400.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrInternal — внутренняя ошибка (storage/БД/контекст). Транспорт: HTTP 500.
	ErrInternal = errors.New("internal error")
)

// Service описывает бизнес-логику ethos-сервиса.
type Service struct {
	storage   storage.Storage
	cfg       config.Config
	sanitizer *bluemonday.Policy
	rcache    cache.RefreshCache  // может быть nil, если кэш не сконфигурирован
	metrics   metrics.DomainStats // может быть nil, если метрики не подключены
}

// New создаёт новый экземпляр Service.
// Контент статей проходит через UGC-политику bluemonday на записи.
func New(storage storage.Storage, cfg config.Config) *Service {
	return &Service{
		storage:   storage,
		cfg:       cfg,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// SetRefreshCache устанавливает кэш refresh-токенов (опционально).
func (s *Service) SetRefreshCache(c cache.RefreshCache) {
	s.rcache = c
}

// SetMetrics подключает доменные метрики (опционально).
func (s *Service) SetMetrics(m metrics.DomainStats) {
	s.metrics = m
}
