package notifications

import (
	"context"
	"doccare-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockRepository(mt *mtest.T) *NotificationMongoRepository {
	return &NotificationMongoRepository{
		GeneralCollection: mt.Coll,
		UserCollection:    mt.Coll,
	}
}

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestNotificationMongoRepository_CreateUserNotification(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("first write upserts", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		upsertedID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{
				bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: upsertedID}},
			}},
		))

		notification := &models.NotificationRecord{
			UserID:        "user-1",
			AppointmentID: "66b1f0c2a4d3e5f6a7b8c9d0",
			Title:         "Appointment Confirmed!",
			Message:       "hello",
		}
		id, err := repo.CreateUserNotification(context.Background(), notification)

		require.NoError(t, err)
		assert.Equal(t, upsertedID.Hex(), id)
		assert.NotNil(t, notification.CreatedAt)
	})

	mt.Run("repeated write returns the existing id", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		existingID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
				{Key: "_id", Value: existingID},
				{Key: "userId", Value: "user-1"},
				{Key: "appointmentId", Value: "66b1f0c2a4d3e5f6a7b8c9d0"},
				{Key: "title", Value: "Appointment Confirmed!"},
				{Key: "message", Value: "hello"},
				{Key: "read", Value: false},
			}),
		)

		id, err := repo.CreateUserNotification(context.Background(), &models.NotificationRecord{
			UserID:        "user-1",
			AppointmentID: "66b1f0c2a4d3e5f6a7b8c9d0",
			Title:         "Appointment Confirmed!",
			Message:       "hello",
		})

		require.NoError(t, err)
		assert.Equal(t, existingID.Hex(), id)
	})

	mt.Run("notification without appointment is inserted", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.CreateUserNotification(context.Background(), &models.NotificationRecord{
			UserID:  "user-1",
			Title:   "Welcome",
			Message: "hello",
		})

		require.NoError(t, err)
		assert.Len(t, id, 24)
	})

	mt.Run("write failure", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    91,
			Message: "shutdown in progress",
			Name:    "ShutdownInProgress",
		}))

		id, err := repo.CreateUserNotification(context.Background(), &models.NotificationRecord{
			UserID:        "user-1",
			AppointmentID: "66b1f0c2a4d3e5f6a7b8c9d0",
			Title:         "Appointment Confirmed!",
			Message:       "hello",
		})

		assert.Empty(t, id)
		assert.Error(t, err)
	})
}

func TestNotificationMongoRepository_Find(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	createdAt := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

	mt.Run("general feed", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "title", Value: "Clinic closed"},
				{Key: "message", Value: "Closed on Poya day"},
				{Key: "createdAt", Value: createdAt},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "title", Value: "Undated"},
				{Key: "message", Value: "No timestamp"},
			},
		))

		notifications, err := repo.FindGeneral(context.Background())

		require.NoError(t, err)
		require.Len(t, notifications, 2)
		require.NotNil(t, notifications[0].CreatedAt)
		assert.True(t, createdAt.Equal(*notifications[0].CreatedAt))
		assert.Nil(t, notifications[1].CreatedAt)
	})

	mt.Run("record missing a title is a schema mismatch", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "userId", Value: "user-1"},
				{Key: "message", Value: "orphan"},
			},
		))

		notifications, err := repo.FindByUserID(context.Background(), "user-1")

		assert.Nil(t, notifications)
		assert.Error(t, err)
	})

	mt.Run("user notification by id not found", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		notification, err := repo.FindUserNotificationByID(context.Background(), "user-1", primitive.NewObjectID().Hex())

		assert.NoError(t, err)
		assert.Nil(t, notification)
	})

	mt.Run("general by malformed id", func(mt *mtest.T) {
		repo := newMockRepository(mt)

		notification, err := repo.FindGeneralByID(context.Background(), "nope")

		assert.Nil(t, notification)
		assert.Error(t, err)
	})
}

func TestNotificationMongoRepository_MarkAsRead(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		matched, err := repo.MarkAsRead(context.Background(), "user-1", primitive.NewObjectID().Hex())

		require.NoError(t, err)
		assert.True(t, matched)
	})

	mt.Run("someone else's notification", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		matched, err := repo.MarkAsRead(context.Background(), "user-2", primitive.NewObjectID().Hex())

		require.NoError(t, err)
		assert.False(t, matched)
	})
}
