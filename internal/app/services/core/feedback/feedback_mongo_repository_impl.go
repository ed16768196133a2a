package feedback

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FeedbackMongoRepository struct {
	Collection *mongo.Collection
}

func NewFeedbackMongoRepository(db *mongo.Client, dbName string) contracts.FeedbackRepository {
	return &FeedbackMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFeedback),
	}
}

func (repo *FeedbackMongoRepository) CreateFeedback(ctx context.Context, feedback *models.Feedback) (string, error) {
	feedback.ID = primitive.NilObjectID
	feedback.CreatedAt = models.Now()

	result, err := repo.Collection.InsertOne(ctx, feedback)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(errors.New("inserted id is not an object id"))
	}
	feedback.ID = objectID
	return objectID.Hex(), nil
}
