package notifications

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationMongoRepository serves both the general feed and the per-user
// inbox collections.
type NotificationMongoRepository struct {
	GeneralCollection *mongo.Collection
	UserCollection    *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Client, dbName string) contracts.NotificationRepository {
	database := db.Database(dbName)
	return &NotificationMongoRepository{
		GeneralCollection: database.Collection(constvars.MongoCollectionNotifications),
		UserCollection:    database.Collection(constvars.MongoCollectionUserNotifications),
	}
}

func (repo *NotificationMongoRepository) CreateUserNotification(ctx context.Context, notification *models.NotificationRecord) (string, error) {
	if notification.CreatedAt == nil {
		createdAt := models.Now()
		notification.CreatedAt = &createdAt
	}
	notification.ID = primitive.NilObjectID

	if notification.AppointmentID == "" {
		result, err := repo.UserCollection.InsertOne(ctx, notification)
		if err != nil {
			return "", exceptions.ErrMongoDBInsertDocument(err)
		}
		objectID, ok := result.InsertedID.(primitive.ObjectID)
		if !ok {
			return "", exceptions.ErrMongoDBInsertDocument(errors.New("inserted id is not an object id"))
		}
		return objectID.Hex(), nil
	}

	// A retried booking notification must not land in the inbox twice.
	filter := bson.M{
		"userId":        notification.UserID,
		"appointmentId": notification.AppointmentID,
	}
	update := bson.M{
		"$setOnInsert": bson.M{
			"title":     notification.Title,
			"message":   notification.Message,
			"read":      notification.Read,
			"createdAt": notification.CreatedAt,
		},
	}

	result, err := repo.UserCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	if objectID, ok := result.UpsertedID.(primitive.ObjectID); ok {
		return objectID.Hex(), nil
	}

	var existing models.NotificationRecord
	if err := repo.UserCollection.FindOne(ctx, filter).Decode(&existing); err != nil {
		return "", exceptions.ErrMongoDBFindDocument(err)
	}
	return existing.ID.Hex(), nil
}

func (repo *NotificationMongoRepository) FindGeneral(ctx context.Context) ([]models.NotificationRecord, error) {
	return repo.findMany(ctx, repo.GeneralCollection, bson.M{}, constvars.MongoCollectionNotifications)
}

func (repo *NotificationMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.NotificationRecord, error) {
	return repo.findMany(ctx, repo.UserCollection, bson.M{"userId": userID}, constvars.MongoCollectionUserNotifications)
}

func (repo *NotificationMongoRepository) FindGeneralByID(ctx context.Context, notificationID string) (*models.NotificationRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return repo.findOne(ctx, repo.GeneralCollection, bson.M{"_id": objectID}, constvars.MongoCollectionNotifications)
}

func (repo *NotificationMongoRepository) FindUserNotificationByID(ctx context.Context, userID, notificationID string) (*models.NotificationRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID, "userId": userID}
	return repo.findOne(ctx, repo.UserCollection, filter, constvars.MongoCollectionUserNotifications)
}

// MarkAsRead only touches the caller's own inbox. It reports whether a
// document matched.
func (repo *NotificationMongoRepository) MarkAsRead(ctx context.Context, userID, notificationID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "userId": userID}
	update := bson.M{"$set": bson.M{"read": true}}

	result, err := repo.UserCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (repo *NotificationMongoRepository) findMany(ctx context.Context, collection *mongo.Collection, filter bson.M, collectionName string) ([]models.NotificationRecord, error) {
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	notifications := make([]models.NotificationRecord, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	for i := range notifications {
		if err := notifications[i].Validate(); err != nil {
			return nil, exceptions.ErrMongoDBSchemaMismatch(err, collectionName)
		}
	}
	return notifications, nil
}

func (repo *NotificationMongoRepository) findOne(ctx context.Context, collection *mongo.Collection, filter bson.M, collectionName string) (*models.NotificationRecord, error) {
	var notification models.NotificationRecord
	err := collection.FindOne(ctx, filter).Decode(&notification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	if err := notification.Validate(); err != nil {
		return nil, exceptions.ErrMongoDBSchemaMismatch(err, collectionName)
	}
	return &notification, nil
}
