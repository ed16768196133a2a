package settings

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSettingsMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reads the misspelled header field", func(mt *mtest.T) {
		repo := &SettingsMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: constvars.MongoSettingsCustomContentDocumentID},
			{Key: "heder", Value: "Booked!"},
			{Key: "footer", Value: "See you soon"},
		}))

		settings, err := repo.FindCustomContent(context.Background())

		require.NoError(t, err)
		require.NotNil(t, settings)
		assert.Equal(t, "Booked!", settings.Header)
		assert.Equal(t, "See you soon", settings.Footer)
	})

	mt.Run("missing document", func(mt *mtest.T) {
		repo := &SettingsMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		settings, err := repo.FindCustomContent(context.Background())

		assert.NoError(t, err)
		assert.Nil(t, settings)
	})

	mt.Run("upsert pins the document id", func(mt *mtest.T) {
		repo := &SettingsMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		settings := &models.Settings{Header: "Booked!"}
		err := repo.UpsertCustomContent(context.Background(), settings)

		require.NoError(t, err)
		assert.Equal(t, constvars.MongoSettingsCustomContentDocumentID, settings.ID)
	})
}
