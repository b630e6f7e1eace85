// Package notify holds the notification fan-out engine and the recipient
// facing inbox operations built on top of the notification store.
package notify

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/anonto42/water-board/backend/internal/events"
	"github.com/anonto42/water-board/backend/internal/models"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 8

// Directory resolves fan-out audiences
type Directory interface {
	ListIDsByNeighborhood(ctx context.Context, neighborhoodID uint) ([]uint, error)
	ListAllIDs(ctx context.Context) ([]uint, error)
}

// Store is the write side of the notification store used by the engine
type Store interface {
	Insert(ctx context.Context, recipientID uint, message, category string) (*models.Notification, error)
	InsertMany(ctx context.Context, recipientIDs []uint, message, category string) ([]models.Notification, error)
}

// Engine writes one notification per recipient of a resolved audience.
// Every per-recipient insert is independent: a failure is logged and the
// remaining recipients are still notified.
type Engine struct {
	directory   Directory
	store       Store
	publisher   events.Publisher
	concurrency int
	now         func() time.Time
}

type Option func(*Engine)

// WithPublisher sets where fan-out summaries are published
func WithPublisher(p events.Publisher) Option {
	return func(e *Engine) {
		if p != nil {
			e.publisher = p
		}
	}
}

// WithConcurrency bounds the number of inserts in flight during one fan-out.
// A value of 1 writes the whole audience through Store.InsertMany.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

func NewEngine(directory Directory, store Store, opts ...Option) *Engine {
	e := &Engine{
		directory:   directory,
		store:       store,
		publisher:   events.NoopPublisher{},
		concurrency: defaultConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NotifyUser creates a single notification. Unlike the batch entry points a
// storage failure is returned to the caller.
func (e *Engine) NotifyUser(ctx context.Context, userID uint, message, category string) (int, error) {
	category = normalizeCategory(category)
	if _, err := e.store.Insert(ctx, userID, message, category); err != nil {
		return 0, fmt.Errorf("notify user %d: %w", userID, err)
	}
	e.publish(ctx, events.AudienceUser, userID, category, 1, 1)
	return 1, nil
}

// NotifyNeighborhood notifies every user currently assigned to the
// neighborhood and returns how many rows were written. An empty
// neighborhood yields 0 without error.
func (e *Engine) NotifyNeighborhood(ctx context.Context, neighborhoodID uint, message, category string) (int, error) {
	ids, err := e.directory.ListIDsByNeighborhood(ctx, neighborhoodID)
	if err != nil {
		return 0, fmt.Errorf("resolve neighborhood %d members: %w", neighborhoodID, err)
	}
	category = normalizeCategory(category)
	created := e.fanOut(ctx, ids, message, category)
	log.Printf("Notifications created: %d/%d for neighborhood %d", created, len(ids), neighborhoodID)
	e.publish(ctx, events.AudienceNeighborhood, neighborhoodID, category, len(ids), created)
	return created, nil
}

// NotifyGlobal notifies every user in the system
func (e *Engine) NotifyGlobal(ctx context.Context, message, category string) (int, error) {
	ids, err := e.directory.ListAllIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve all users: %w", err)
	}
	category = normalizeCategory(category)
	created := e.fanOut(ctx, ids, message, category)
	log.Printf("Global notifications created: %d/%d", created, len(ids))
	e.publish(ctx, events.AudienceGlobal, 0, category, len(ids), created)
	return created, nil
}

func (e *Engine) fanOut(ctx context.Context, ids []uint, message, category string) int {
	if len(ids) == 0 {
		return 0
	}

	if e.concurrency <= 1 {
		created, err := e.store.InsertMany(ctx, ids, message, category)
		logInsertFailures(err)
		return len(created)
	}

	var created atomic.Int64
	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if _, err := e.store.Insert(ctx, id, message, category); err != nil {
				log.Printf("Error creating notification for user %d: %v", id, err)
				return nil
			}
			created.Add(1)
			return nil
		})
	}
	g.Wait()
	return int(created.Load())
}

func (e *Engine) publish(ctx context.Context, audience string, targetID uint, category string, resolved, created int) {
	if resolved == 0 {
		return
	}
	err := e.publisher.PublishFanOut(ctx, events.FanOutEvent{
		Audience:   audience,
		TargetID:   targetID,
		Category:   category,
		Resolved:   resolved,
		Created:    created,
		OccurredAt: e.now(),
	})
	if err != nil {
		log.Printf("Error publishing %s fan-out event: %v", audience, err)
	}
}

func logInsertFailures(err error) {
	if err == nil {
		return
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		log.Printf("Error creating notifications: %v", err)
		return
	}
	for _, e := range joined.Unwrap() {
		log.Printf("Error creating notification: %v", e)
	}
}

func normalizeCategory(category string) string {
	if category == "" {
		return models.CategoryGeneral
	}
	return category
}
