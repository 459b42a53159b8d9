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

func TestToggleLike_SetAndUnset(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	articleID := uuid.New()
	userID := uuid.New()

	first := st.EXPECT().ToggleLike(gomock.Any(), articleID, userID).
		Return(&models.LikeState{Liked: true, Likes: 1}, nil)
	st.EXPECT().ToggleLike(gomock.Any(), articleID, userID).
		Return(&models.LikeState{Liked: false, Likes: 0}, nil).After(first)

	state, err := svc.ToggleLike(context.Background(), articleID.String(), userID)
	require.NoError(t, err)
	require.True(t, state.Liked)
	require.EqualValues(t, 1, state.Likes)

	// Повторный вызов снимает лайк и возвращает исходный счётчик.
	state, err = svc.ToggleLike(context.Background(), articleID.String(), userID)
	require.NoError(t, err)
	require.False(t, state.Liked)
	require.EqualValues(t, 0, state.Likes)
}

func TestToggleLike_AnonymousForbidden(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.ToggleLike(context.Background(), uuid.NewString(), uuid.Nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestToggleLike_MalformedArticleID(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.ToggleLike(context.Background(), "broken", uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestToggleLike_ArticleMissing(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	articleID := uuid.New()
	userID := uuid.New()
	st.EXPECT().ToggleLike(gomock.Any(), articleID, userID).Return(nil, storage.ErrNotFound)

	_, err := svc.ToggleLike(context.Background(), articleID.String(), userID)
	require.ErrorIs(t, err, ErrNotFound)
}
