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

func TestProfileByID_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	st.EXPECT().ProfileByID(gomock.Any(), userID).
		Return(&models.Profile{UserID: userID, Username: "alice"}, nil)

	got, err := svc.ProfileByID(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
}

func TestProfileByID_NilID(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.ProfileByID(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGrantMembership_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	targetID := uuid.New()

	st.EXPECT().IsJournalAdmin(gomock.Any(), adminID).Return(true, nil)
	st.EXPECT().SetMembership(gomock.Any(), targetID, true).Return(nil)

	require.NoError(t, svc.GrantMembership(context.Background(), adminID, targetID, true))
}

func TestGrantMembership_NotAdmin(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	st.EXPECT().IsJournalAdmin(gomock.Any(), adminID).Return(false, nil)
	// SetMembership не ожидается: отказ до записи.

	err := svc.GrantMembership(context.Background(), adminID, uuid.New(), true)
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestGrantMembership_TargetMissing(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	targetID := uuid.New()

	st.EXPECT().IsJournalAdmin(gomock.Any(), adminID).Return(true, nil)
	st.EXPECT().SetMembership(gomock.Any(), targetID, false).Return(storage.ErrNotFound)

	err := svc.GrantMembership(context.Background(), adminID, targetID, false)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGrantMembership_NilIDs(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	err := svc.GrantMembership(context.Background(), uuid.Nil, uuid.New(), true)
	require.ErrorIs(t, err, ErrInvalidArgument)

	err = svc.GrantMembership(context.Background(), uuid.New(), uuid.Nil, true)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
