package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/HeetJani123/ethos-web-collective/internal/http/httperr"
	"github.com/HeetJani123/ethos-web-collective/internal/http/middleware"
	"github.com/HeetJani123/ethos-web-collective/internal/service"
)

// ListArticles — GET /journal?q=&category=.
// Фильтр необязателен: без параметров отдаётся вся выдача (новые сверху).
func (h *Handlers) ListArticles(w http.ResponseWriter, r *http.Request) {
	input := service.ListArticlesInput{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}

	articles, err := h.svc.ListArticles(r.Context(), input)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	out := ArticleListResponse{Articles: make([]ArticleResponse, 0, len(articles))}
	for _, a := range articles {
		out.Articles = append(out.Articles, articleResponseFrom(a))
	}

	writeJSON(w, http.StatusOK, out)
}

// GetArticleByID — GET /journal/{id}.
// Маршрут публичный; для аутентифицированного запроса добавляется
// признак liked текущего пользователя.
func (h *Handlers) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	view, err := h.svc.ArticleByID(r.Context(), id, middleware.IdentityFrom(r.Context()))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ArticleDetailResponse{
		ArticleResponse: articleResponseFrom(view.Article),
		Liked:           view.Liked,
	})
}

// CreateArticle — POST /journal. Только для членов института:
// авторство берётся из токена, членство проверяет сервисный слой.
func (h *Handlers) CreateArticle(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	var in CreateArticleRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	article, err := h.svc.CreateArticle(r.Context(), service.CreateArticleInput{
		AuthorID:   identity.UserID,
		Title:      in.Title,
		AuthorName: in.Author,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		Category:   in.Category,
		Tags:       in.Tags,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, articleResponseFrom(*article))
}
