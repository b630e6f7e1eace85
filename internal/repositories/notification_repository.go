package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anonto42/water-board/backend/internal/models"
	"gorm.io/gorm"
)

// ErrNotificationNotFound is returned when a notification does not exist or
// belongs to another recipient. Both cases look the same to the caller.
var ErrNotificationNotFound = errors.New("notification not found")

// RecipientError is a single failed insert inside InsertMany
type RecipientError struct {
	RecipientID uint
	Err         error
}

func (e *RecipientError) Error() string {
	return fmt.Sprintf("recipient %d: %v", e.RecipientID, e.Err)
}

func (e *RecipientError) Unwrap() error { return e.Err }

// GroupedNotifications splits a recipient's inbox by age
type GroupedNotifications struct {
	Today     []models.Notification `json:"today"`
	Yesterday []models.Notification `json:"yesterday"`
	ThisWeek  []models.Notification `json:"this_week"`
	Older     []models.Notification `json:"older"`
}

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	Insert(ctx context.Context, recipientID uint, message, category string) (*models.Notification, error)
	InsertMany(ctx context.Context, recipientIDs []uint, message, category string) ([]models.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uint, page, pageSize int) ([]models.Notification, int64, int64, error)
	Grouped(ctx context.Context, recipientID uint) (*GroupedNotifications, error)
	UnreadCount(ctx context.Context, recipientID uint) (int64, error)
	MarkRead(ctx context.Context, notificationID, recipientID uint) (*models.Notification, error)
	MarkAllRead(ctx context.Context, recipientID uint) (int64, error)
	DeleteOne(ctx context.Context, notificationID, recipientID uint) error
}

type postgresNotificationRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db, now: time.Now}
}

func (r *postgresNotificationRepository) Insert(ctx context.Context, recipientID uint, message, category string) (*models.Notification, error) {
	n := &models.Notification{
		RecipientID: recipientID,
		Message:     message,
		Category:    category,
		CreatedAt:   r.now(),
	}
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, fmt.Errorf("inserting notification for recipient %d: %w", recipientID, err)
	}
	return n, nil
}

// InsertMany writes one row per recipient, each in its own statement. Rows
// that were written are returned even when some recipients failed; the error
// joins one *RecipientError per failure.
func (r *postgresNotificationRepository) InsertMany(ctx context.Context, recipientIDs []uint, message, category string) ([]models.Notification, error) {
	created := make([]models.Notification, 0, len(recipientIDs))
	var errs []error
	for _, id := range recipientIDs {
		n, err := r.Insert(ctx, id, message, category)
		if err != nil {
			errs = append(errs, &RecipientError{RecipientID: id, Err: err})
			continue
		}
		created = append(created, *n)
	}
	return created, errors.Join(errs...)
}

type notificationCounts struct {
	Total  int64
	Unread int64
}

func (r *postgresNotificationRepository) ListByRecipient(ctx context.Context, recipientID uint, page, pageSize int) ([]models.Notification, int64, int64, error) {
	db := r.db.WithContext(ctx)

	// Both counters come from one statement so they agree with each other.
	var counts notificationCounts
	err := db.Model(&models.Notification{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN is_read THEN 0 ELSE 1 END), 0) AS unread").
		Where("recipient_id = ?", recipientID).
		Scan(&counts).Error
	if err != nil {
		return nil, 0, 0, fmt.Errorf("counting notifications: %w", err)
	}

	notifications := make([]models.Notification, 0, pageSize)
	offset := (page - 1) * pageSize
	err = db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(pageSize).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, 0, fmt.Errorf("listing notifications: %w", err)
	}

	return notifications, counts.Total, counts.Unread, nil
}

func (r *postgresNotificationRepository) Grouped(ctx context.Context, recipientID uint) (*GroupedNotifications, error) {
	now := r.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	weekStart := todayStart.AddDate(0, 0, -7)

	db := r.db.WithContext(ctx)
	g := &GroupedNotifications{}

	// Today
	if err := db.Where("recipient_id = ? AND created_at >= ?", recipientID, todayStart).
		Order("created_at DESC").Order("id DESC").Find(&g.Today).Error; err != nil {
		return nil, err
	}

	// Yesterday
	if err := db.Where("recipient_id = ? AND created_at >= ? AND created_at < ?", recipientID, yesterdayStart, todayStart).
		Order("created_at DESC").Order("id DESC").Find(&g.Yesterday).Error; err != nil {
		return nil, err
	}

	// This week (excluding today and yesterday)
	if err := db.Where("recipient_id = ? AND created_at >= ? AND created_at < ?", recipientID, weekStart, yesterdayStart).
		Order("created_at DESC").Order("id DESC").Find(&g.ThisWeek).Error; err != nil {
		return nil, err
	}

	// Older
	if err := db.Where("recipient_id = ? AND created_at < ?", recipientID, weekStart).
		Order("created_at DESC").Order("id DESC").Limit(50).Find(&g.Older).Error; err != nil {
		return nil, err
	}

	return g, nil
}

func (r *postgresNotificationRepository) UnreadCount(ctx context.Context, recipientID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

// MarkRead sets is_read on a notification owned by recipientID. The ownership
// check and the update are one statement. Marking a read row again succeeds.
func (r *postgresNotificationRepository) MarkRead(ctx context.Context, notificationID, recipientID uint) (*models.Notification, error) {
	var n models.Notification
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Notification{}).
			Where("id = ? AND recipient_id = ?", notificationID, recipientID).
			Update("is_read", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotificationNotFound
		}
		return tx.Where("id = ? AND recipient_id = ?", notificationID, recipientID).First(&n).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *postgresNotificationRepository) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *postgresNotificationRepository) DeleteOne(ctx context.Context, notificationID, recipientID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", notificationID, recipientID).
		Delete(&models.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
