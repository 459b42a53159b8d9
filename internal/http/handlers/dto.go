// Входные/выходные модели REST-слоя: зеркалят доменные модели,
// но фиксируют внешний контракт (имена полей JSON) отдельно от домена.
package handlers

import (
	"time"

	"github.com/HeetJani123/ethos-web-collective/internal/models"
)

type AuthRegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type AuthLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthRevokeRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthRevokeResponse struct {
	Ok bool `json:"ok"`
}

type AuthResponse struct {
	UserID          string `json:"user_id"`
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
	AccessExpiresAt int64  `json:"access_expires_at"` // Unix UTC
}

type SessionResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	IsMember bool   `json:"is_member"`
}

type ArticleResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	AuthorID    string    `json:"author_id"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	PublishedAt time.Time `json:"published_at"`
	Likes       int64     `json:"likes"`
}

type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
}

type ArticleDetailResponse struct {
	ArticleResponse
	Liked bool `json:"liked"`
}

type CreateArticleRequest struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

type CommentResponse struct {
	ID         string    `json:"id"`
	ArticleID  string    `json:"article_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type LikeResponse struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

type MembershipRequest struct {
	IsMember bool `json:"is_member"`
}

func authResponseFrom(pair *models.TokenPair, userID string) AuthResponse {
	return AuthResponse{
		UserID:          userID,
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		AccessExpiresAt: pair.AccessExpiresAt.UTC().Unix(),
	}
}

func articleResponseFrom(a models.Article) ArticleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	return ArticleResponse{
		ID:          a.ID.String(),
		Title:       a.Title,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		Author:      a.AuthorName,
		AuthorID:    a.AuthorID.String(),
		Category:    a.Category,
		Tags:        tags,
		PublishedAt: a.PublishedAt.UTC(),
		Likes:       a.Likes,
	}
}

func commentResponseFrom(c models.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID.String(),
		ArticleID:  c.ArticleID.String(),
		AuthorID:   c.AuthorID.String(),
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt.UTC(),
	}
}
