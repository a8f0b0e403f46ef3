package documents

import (
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StagingMongoRepository struct {
	Collection *mongo.Collection
}

func NewStagingMongoRepository(db *mongo.Database, collectionName string) contracts.StagingRepository {
	return &StagingMongoRepository{
		Collection: db.Collection(collectionName),
	}
}

func (repo *StagingMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.StagingBatch, error) {
	var batch models.StagingBatch
	err := repo.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&batch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &batch, nil
}

// Save replaces the user's batch as a whole, creating it when missing.
func (repo *StagingMongoRepository) Save(ctx context.Context, batch *models.StagingBatch) error {
	opts := options.Replace().SetUpsert(true)
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"userId": batch.UserID}, batch, opts)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *StagingMongoRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *StagingMongoRepository) FindUpdatedBefore(ctx context.Context, before time.Time) ([]models.StagingBatch, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"updatedAt": bson.M{"$lt": before}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	batches := make([]models.StagingBatch, 0)
	if err := cursor.All(ctx, &batches); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return batches, nil
}

func (repo *StagingMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "updatedAt", Value: 1}},
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, repo.Collection.Name())
	}
	return nil
}
