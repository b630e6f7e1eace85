package notify

import (
	"context"
	"testing"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInboxStore struct {
	total, unread      int64
	gotPage, gotSize   int
	markedID, markedBy uint
}

func (s *stubInboxStore) ListByRecipient(_ context.Context, _ uint, page, pageSize int) ([]models.Notification, int64, int64, error) {
	s.gotPage, s.gotSize = page, pageSize
	return []models.Notification{}, s.total, s.unread, nil
}

func (s *stubInboxStore) Grouped(context.Context, uint) (*repositories.GroupedNotifications, error) {
	return &repositories.GroupedNotifications{}, nil
}

func (s *stubInboxStore) UnreadCount(context.Context, uint) (int64, error) { return s.unread, nil }

func (s *stubInboxStore) MarkRead(_ context.Context, notificationID, recipientID uint) (*models.Notification, error) {
	s.markedID, s.markedBy = notificationID, recipientID
	return &models.Notification{ID: notificationID, RecipientID: recipientID, IsRead: true}, nil
}

func (s *stubInboxStore) MarkAllRead(context.Context, uint) (int64, error) { return s.unread, nil }

func (s *stubInboxStore) DeleteOne(context.Context, uint, uint) error { return nil }

func TestInbox_RejectsMissingRecipient(t *testing.T) {
	inbox := NewInbox(&stubInboxStore{}, 0, 0)
	ctx := context.Background()

	_, err := inbox.List(ctx, 0, 1, 20)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = inbox.Grouped(ctx, 0)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = inbox.UnreadCount(ctx, 0)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = inbox.MarkRead(ctx, 0, 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = inbox.MarkAllRead(ctx, 0)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, inbox.DeleteOne(ctx, 0, 1), ErrUnauthorized)
}

func TestInbox_ListClampsPaging(t *testing.T) {
	tests := []struct {
		name               string
		page, size         int
		wantPage, wantSize int
	}{
		{"defaults", 0, 0, 1, DefaultPageSize},
		{"negative", -3, -1, 1, DefaultPageSize},
		{"too large", 2, 500, 2, MaxPageSize},
		{"valid", 3, 10, 3, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubInboxStore{}
			page, err := NewInbox(store, 0, 0).List(context.Background(), 1, tt.page, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, store.gotPage)
			assert.Equal(t, tt.wantSize, store.gotSize)
			assert.Equal(t, tt.wantPage, page.Pagination.Page)
			assert.Equal(t, tt.wantSize, page.Pagination.PageSize)
		})
	}
}

func TestInbox_TotalPages(t *testing.T) {
	store := &stubInboxStore{total: 41, unread: 5}
	page, err := NewInbox(store, 20, 50).List(context.Background(), 1, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.EqualValues(t, 41, page.Pagination.Total)
	assert.EqualValues(t, 5, page.Pagination.UnreadCount)

	store.total = 0
	page, err = NewInbox(store, 20, 50).List(context.Background(), 1, 1, 20)
	require.NoError(t, err)
	assert.Zero(t, page.Pagination.TotalPages)
}

func TestInbox_MarkReadPassesOwner(t *testing.T) {
	store := &stubInboxStore{}
	n, err := NewInbox(store, 0, 0).MarkRead(context.Background(), 7, 99)
	require.NoError(t, err)
	assert.True(t, n.IsRead)
	assert.Equal(t, uint(99), store.markedID)
	assert.Equal(t, uint(7), store.markedBy)
}

func TestNewInbox_NormalizesSizes(t *testing.T) {
	inbox := NewInbox(&stubInboxStore{}, 80, 30)
	assert.Equal(t, 30, inbox.maxPageSize)
	assert.Equal(t, 20, inbox.defaultPageSize)
}
