package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/anonto42/water-board/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewsRepository defines the interface for news operations
type NewsRepository interface {
	Create(ctx context.Context, news *models.News) error
	List(ctx context.Context, skip, limit int64) ([]models.News, error)
	Delete(ctx context.Context, id string) error
}

// MongoNewsRepository implements NewsRepository for MongoDB
type MongoNewsRepository struct {
	collection *mongo.Collection
}

// NewMongoNewsRepository creates a new MongoNewsRepository
func NewMongoNewsRepository(db *mongo.Database) *MongoNewsRepository {
	return &MongoNewsRepository{collection: db.Collection("news")}
}

func (r *MongoNewsRepository) Create(ctx context.Context, news *models.News) error {
	news.ID = primitive.NewObjectID()
	news.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, news)
	return err
}

func (r *MongoNewsRepository) List(ctx context.Context, skip, limit int64) ([]models.News, error) {
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	news := []models.News{}
	if err = cursor.All(ctx, &news); err != nil {
		return nil, err
	}
	return news, nil
}

func (r *MongoNewsRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid news ID format: %w", err)
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
