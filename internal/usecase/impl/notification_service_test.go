package impl

import (
	"context"
	"testing"

	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/repository"
	mockRepo "beautymap/internal/mocks/repository"
	"beautymap/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *repoMocks) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoMocks(t)
	expectTx(txManager, repos)

	return NewNotificationService(txManager, discardLogger()), repos
}

func TestNotificationService_ListAndCount(t *testing.T) {
	svc, repos := createTestNotificationService(t)
	ctx := context.Background()

	list := []*entity.Notification{{ID: 2, ProfileID: 1}, {ID: 1, ProfileID: 1, Read: true}}
	repos.notifications.EXPECT().ListByProfile(ctx, int64(1)).Return(list, nil)
	repos.notifications.EXPECT().CountUnread(ctx, int64(1)).Return(int64(1), nil)

	got, err := svc.ListNotifications(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, list, got)

	count, err := svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNotificationService_OwnerChecks(t *testing.T) {
	tests := []struct {
		name    string
		found   *entity.Notification
		findErr error
		wantErr error
	}{
		{name: "owner", found: &entity.Notification{ID: 4, ProfileID: 1}},
		{name: "other owner", found: &entity.Notification{ID: 4, ProfileID: 2}, wantErr: domainerrors.ErrForbidden},
		{name: "missing", findErr: repository.ErrNotificationNotFound, wantErr: domainerrors.ErrNotificationNotFound},
	}

	for _, tt := range tests {
		t.Run("mark read/"+tt.name, func(t *testing.T) {
			svc, repos := createTestNotificationService(t)
			ctx := context.Background()

			repos.notifications.EXPECT().FindByID(ctx, int64(4)).Return(tt.found, tt.findErr)
			if tt.wantErr == nil {
				repos.notifications.EXPECT().MarkRead(ctx, int64(4)).Return(nil)
			}

			err := svc.MarkRead(ctx, 1, 4)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
		})

		t.Run("delete/"+tt.name, func(t *testing.T) {
			svc, repos := createTestNotificationService(t)
			ctx := context.Background()

			repos.notifications.EXPECT().FindByID(ctx, int64(4)).Return(tt.found, tt.findErr)
			if tt.wantErr == nil {
				repos.notifications.EXPECT().Delete(ctx, int64(4)).Return(nil)
			}

			err := svc.DeleteNotification(ctx, 1, 4)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNotificationService_Clear(t *testing.T) {
	svc, repos := createTestNotificationService(t)
	ctx := context.Background()

	repos.notifications.EXPECT().DeleteByProfile(ctx, int64(1)).Return(nil)

	require.NoError(t, svc.ClearNotifications(ctx, 1))
}
