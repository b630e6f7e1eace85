package notify

import (
	"context"
	"errors"
	"math"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/repositories"
)

// ErrUnauthorized is returned by inbox operations called without a recipient
var ErrUnauthorized = errors.New("recipient identity required")

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)

// InboxStore is the read and read-state side of the notification store
type InboxStore interface {
	ListByRecipient(ctx context.Context, recipientID uint, page, pageSize int) ([]models.Notification, int64, int64, error)
	Grouped(ctx context.Context, recipientID uint) (*repositories.GroupedNotifications, error)
	UnreadCount(ctx context.Context, recipientID uint) (int64, error)
	MarkRead(ctx context.Context, notificationID, recipientID uint) (*models.Notification, error)
	MarkAllRead(ctx context.Context, recipientID uint) (int64, error)
	DeleteOne(ctx context.Context, notificationID, recipientID uint) error
}

// Page is one page of a recipient's notifications, newest first
type Page struct {
	Items      []models.Notification         `json:"items"`
	Pagination models.NotificationPagination `json:"pagination"`
}

// Inbox exposes a recipient's notifications. Every call is scoped to the
// recipient passed in; a zero recipient is rejected with ErrUnauthorized.
type Inbox struct {
	store           InboxStore
	defaultPageSize int
	maxPageSize     int
}

func NewInbox(store InboxStore, defaultPageSize, maxPageSize int) *Inbox {
	if maxPageSize < 1 {
		maxPageSize = MaxPageSize
	}
	if defaultPageSize < 1 || defaultPageSize > maxPageSize {
		defaultPageSize = min(DefaultPageSize, maxPageSize)
	}
	return &Inbox{store: store, defaultPageSize: defaultPageSize, maxPageSize: maxPageSize}
}

func (in *Inbox) List(ctx context.Context, recipientID uint, page, pageSize int) (*Page, error) {
	if recipientID == 0 {
		return nil, ErrUnauthorized
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = in.defaultPageSize
	}
	if pageSize > in.maxPageSize {
		pageSize = in.maxPageSize
	}

	items, total, unread, err := in.store.ListByRecipient(ctx, recipientID, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &Page{
		Items: items,
		Pagination: models.NotificationPagination{
			Page:        page,
			PageSize:    pageSize,
			Total:       total,
			UnreadCount: unread,
			TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
		},
	}, nil
}

func (in *Inbox) Grouped(ctx context.Context, recipientID uint) (*repositories.GroupedNotifications, error) {
	if recipientID == 0 {
		return nil, ErrUnauthorized
	}
	return in.store.Grouped(ctx, recipientID)
}

func (in *Inbox) UnreadCount(ctx context.Context, recipientID uint) (int64, error) {
	if recipientID == 0 {
		return 0, ErrUnauthorized
	}
	return in.store.UnreadCount(ctx, recipientID)
}

// MarkRead is idempotent: an already read notification is returned unchanged.
func (in *Inbox) MarkRead(ctx context.Context, recipientID, notificationID uint) (*models.Notification, error) {
	if recipientID == 0 {
		return nil, ErrUnauthorized
	}
	return in.store.MarkRead(ctx, notificationID, recipientID)
}

// MarkAllRead flags every unread notification of the recipient in one
// statement. Rows inserted after the statement runs stay unread.
func (in *Inbox) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	if recipientID == 0 {
		return 0, ErrUnauthorized
	}
	return in.store.MarkAllRead(ctx, recipientID)
}

func (in *Inbox) DeleteOne(ctx context.Context, recipientID, notificationID uint) error {
	if recipientID == 0 {
		return ErrUnauthorized
	}
	return in.store.DeleteOne(ctx, notificationID, recipientID)
}
