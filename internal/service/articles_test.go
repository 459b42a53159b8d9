package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/HeetJani123/ethos-web-collective/internal/models"
	"github.com/HeetJani123/ethos-web-collective/internal/storage"
)

func sampleArticles() []models.Article {
	return []models.Article{
		{
			ID:       uuid.New(),
			Title:    "The Future of Machine Reasoning",
			Excerpt:  "How large models change research workflows.",
			Category: models.CategoryAI,
		},
		{
			ID:       uuid.New(),
			Title:    "Carbon Capture at Scale",
			Excerpt:  "Field results from pilot deployments.",
			Category: models.CategoryClimate,
		},
		{
			ID:       uuid.New(),
			Title:    "Gene Editing Oversight",
			Excerpt:  "Machine-assisted review of clinical protocols.",
			Category: models.CategoryBioTech,
		},
	}
}

func TestListArticles_NoFilter(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ListArticles(gomock.Any()).Return(sampleArticles(), nil)

	got, err := svc.ListArticles(context.Background(), ListArticlesInput{})
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestListArticles_CategoryAllPassesEverything(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ListArticles(gomock.Any()).Return(sampleArticles(), nil)

	got, err := svc.ListArticles(context.Background(), ListArticlesInput{Category: models.CategoryAll})
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestListArticles_CategoryFilter(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ListArticles(gomock.Any()).Return(sampleArticles(), nil)

	got, err := svc.ListArticles(context.Background(), ListArticlesInput{Category: models.CategoryClimate})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Carbon Capture at Scale", got[0].Title)
}

func TestListArticles_QueryMatchesTitleOrExcerpt(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// "machine" встречается в title первой статьи и в excerpt третьей.
	st.EXPECT().ListArticles(gomock.Any()).Return(sampleArticles(), nil)

	got, err := svc.ListArticles(context.Background(), ListArticlesInput{Query: "MACHINE"})
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestListArticles_QueryAndCategoryCombine(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ListArticles(gomock.Any()).Return(sampleArticles(), nil)

	got, err := svc.ListArticles(context.Background(), ListArticlesInput{
		Query:    "machine",
		Category: models.CategoryBioTech,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Gene Editing Oversight", got[0].Title)
}

func TestListArticles_NoMatchesIsEmptyNotError(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ListArticles(gomock.Any()).Return(sampleArticles(), nil)

	got, err := svc.ListArticles(context.Background(), ListArticlesInput{Query: "no such text"})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestArticleByID_AnonymousViewer(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	article := sampleArticles()[0]
	st.EXPECT().ArticleByID(gomock.Any(), article.ID).Return(&article, nil)
	// HasLike для анонимного запроса не вызывается.

	view, err := svc.ArticleByID(context.Background(), article.ID.String(), nil)
	require.NoError(t, err)
	require.False(t, view.Liked)
	require.Equal(t, article.Title, view.Title)
}

func TestArticleByID_ViewerLiked(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	article := sampleArticles()[0]
	viewer := &models.Identity{UserID: uuid.New()}

	st.EXPECT().ArticleByID(gomock.Any(), article.ID).Return(&article, nil)
	st.EXPECT().HasLike(gomock.Any(), article.ID, viewer.UserID).Return(true, nil)

	view, err := svc.ArticleByID(context.Background(), article.ID.String(), viewer)
	require.NoError(t, err)
	require.True(t, view.Liked)
}

func TestArticleByID_MalformedID(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.ArticleByID(context.Background(), "not-a-uuid", nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func validCreateInput(authorID uuid.UUID) CreateArticleInput {
	return CreateArticleInput{
		AuthorID:   authorID,
		Title:      "Policy Notes",
		AuthorName: "Dr. Sarah Chen",
		Excerpt:    "Short summary.",
		Content:    "<p>Body text.</p>",
		Category:   models.CategoryAI,
		Tags:       []string{"policy", "ai"},
	}
}

func memberProfile(userID uuid.UUID) *models.Profile {
	return &models.Profile{UserID: userID, Username: "chen", IsMember: true}
}

func TestCreateArticle_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	st.EXPECT().ProfileByID(gomock.Any(), authorID).Return(memberProfile(authorID), nil)
	st.EXPECT().SaveArticle(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *models.Article) (*models.Article, error) {
			require.Equal(t, authorID, a.AuthorID)
			require.False(t, a.PublishedAt.IsZero())
			return a, nil
		})

	got, err := svc.CreateArticle(context.Background(), validCreateInput(authorID))
	require.NoError(t, err)
	require.Equal(t, "Policy Notes", got.Title)
}

func TestCreateArticle_NotMember(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	st.EXPECT().ProfileByID(gomock.Any(), authorID).
		Return(&models.Profile{UserID: authorID, Username: "guest"}, nil)

	_, err := svc.CreateArticle(context.Background(), validCreateInput(authorID))
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCreateArticle_NoProfile(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	st.EXPECT().ProfileByID(gomock.Any(), authorID).Return(nil, storage.ErrNotFound)

	_, err := svc.CreateArticle(context.Background(), validCreateInput(authorID))
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCreateArticle_InvalidCategory(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	st.EXPECT().ProfileByID(gomock.Any(), authorID).Return(memberProfile(authorID), nil)

	input := validCreateInput(authorID)
	input.Category = "Astrology"

	_, err := svc.CreateArticle(context.Background(), input)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCreateArticle_EmptyRequiredFields(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	st.EXPECT().ProfileByID(gomock.Any(), authorID).Return(memberProfile(authorID), nil).AnyTimes()

	for _, mutate := range []func(*CreateArticleInput){
		func(in *CreateArticleInput) { in.Title = "   " },
		func(in *CreateArticleInput) { in.AuthorName = "" },
		func(in *CreateArticleInput) { in.Content = "\n\t" },
	} {
		input := validCreateInput(authorID)
		mutate(&input)

		_, err := svc.CreateArticle(context.Background(), input)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestCreateArticle_SanitizesContent(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	st.EXPECT().ProfileByID(gomock.Any(), authorID).Return(memberProfile(authorID), nil)

	var saved *models.Article
	st.EXPECT().SaveArticle(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *models.Article) (*models.Article, error) {
			saved = a
			return a, nil
		})

	input := validCreateInput(authorID)
	input.Content = `<p>ok</p><script>alert("x")</script>`

	_, err := svc.CreateArticle(context.Background(), input)
	require.NoError(t, err)
	require.Contains(t, saved.Content, "<p>ok</p>")
	require.NotContains(t, saved.Content, "<script>")
}

func TestCreateArticle_NormalizesTags(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	st.EXPECT().ProfileByID(gomock.Any(), authorID).Return(memberProfile(authorID), nil)

	var saved *models.Article
	st.EXPECT().SaveArticle(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *models.Article) (*models.Article, error) {
			saved = a
			return a, nil
		})

	input := validCreateInput(authorID)
	input.Tags = []string{" ai ", "policy", "ai", "", "policy", "ethics"}

	_, err := svc.CreateArticle(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, []string{"ai", "policy", "ethics"}, saved.Tags)
}

func TestNormalizeTags_Empty(t *testing.T) {
	t.Parallel()

	require.Empty(t, normalizeTags(nil))
	require.Empty(t, normalizeTags([]string{"", "  "}))
}
