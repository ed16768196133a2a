package settings

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingsMongoRepository struct {
	Collection *mongo.Collection
}

func NewSettingsMongoRepository(db *mongo.Client, dbName string) contracts.SettingsRepository {
	return &SettingsMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSettings),
	}
}

func (repo *SettingsMongoRepository) FindCustomContent(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	filter := bson.M{"_id": constvars.MongoSettingsCustomContentDocumentID}
	err := repo.Collection.FindOne(ctx, filter).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &settings, nil
}

func (repo *SettingsMongoRepository) UpsertCustomContent(ctx context.Context, settings *models.Settings) error {
	settings.ID = constvars.MongoSettingsCustomContentDocumentID
	filter := bson.M{"_id": settings.ID}

	_, err := repo.Collection.ReplaceOne(ctx, filter, settings, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
