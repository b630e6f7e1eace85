package repositories

import (
	"context"
	"time"

	"github.com/anonto42/water-board/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityLogRepository records administrative actions
type ActivityLogRepository interface {
	Record(ctx context.Context, actorID uint, action string) error
	List(ctx context.Context, skip, limit int64) ([]models.ActivityLog, int64, error)
}

type mongoActivityLogRepository struct {
	collection *mongo.Collection
}

func NewMongoActivityLogRepository(db *mongo.Database) ActivityLogRepository {
	return &mongoActivityLogRepository{collection: db.Collection("activity_logs")}
}

func (r *mongoActivityLogRepository) Record(ctx context.Context, actorID uint, action string) error {
	_, err := r.collection.InsertOne(ctx, models.ActivityLog{
		ActorID:   actorID,
		Action:    action,
		CreatedAt: time.Now(),
	})
	return err
}

func (r *mongoActivityLogRepository) List(ctx context.Context, skip, limit int64) ([]models.ActivityLog, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	logs := []models.ActivityLog{}
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
