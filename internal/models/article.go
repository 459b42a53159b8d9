// models содержит доменные сущности ethos-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Фиксированный набор категорий журнала (финальная редакция формы публикации).
const (
	CategoryAI      = "Artificial Intelligence"
	CategoryBioTech = "Bio Technology"
	CategoryClimate = "Climate Technology"
	CategoryMedSoc  = "Med Society"
	CategoryEthics  = "Stem Ethics"

	// CategoryAll — псевдокатегория фильтра выдачи: «показать всё».
	// В статьях не хранится.
	CategoryAll = "All"
)

// Categories возвращает допустимые категории статьи (без CategoryAll).
func Categories() []string {
	return []string{
		CategoryAI,
		CategoryBioTech,
		CategoryClimate,
		CategoryMedSoc,
		CategoryEthics,
	}
}

// IsValidCategory проверяет, что категория входит в фиксированный набор.
func IsValidCategory(category string) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}

	return false
}

// Article — внутренняя доменная модель статьи журнала.
// Важно:
//   - AuthorName — свободный текст из формы публикации, не обязан совпадать
//     с username профиля AuthorID;
//   - Content — rich text (HTML), на записи проходит санитизацию;
//   - Likes — денормализованный счётчик; меняется только в одной транзакции
//     со связью article_likes, поэтому всегда равен числу связей;
//   - PublishedAt — выставляется сервером в UTC на вставке.
type Article struct {
	ID          uuid.UUID
	Title       string
	Excerpt     string
	Content     string
	AuthorID    uuid.UUID
	AuthorName  string
	Category    string
	Tags        []string
	PublishedAt time.Time
	Likes       int64
}

// ArticleView — статья в выдаче детальной страницы:
// сама статья плюс признак «лайкнул ли текущий пользователь».
// Для анонимного запроса Liked всегда false.
type ArticleView struct {
	Article
	Liked bool
}
