package appointments

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func appointmentDocument(id primitive.ObjectID, createdAt time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "doctorId", Value: "66b1f0c2a4d3e5f6a7b8c9d0"},
		{Key: "doctorName", Value: "Ann Perera"},
		{Key: "doctorSpecialty", Value: "Cardiology"},
		{Key: "userId", Value: "user-1"},
		{Key: "userEmail", Value: "user@example.com"},
		{Key: "appointmentDate", Value: "2024-06-15"},
		{Key: "appointmentTime", Value: "05:30 PM"},
		{Key: "status", Value: constvars.AppointmentStatusPending},
		{Key: "createdAt", Value: createdAt},
	}
}

func TestAppointmentMongoRepository_CreateAppointment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	fixedNow := time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)
	originalNow := models.Now
	models.Now = func() time.Time { return fixedNow }
	defer func() { models.Now = originalNow }()

	mt.Run("stamps server fields and returns the id", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		appointment := &models.Appointment{
			DoctorID:        "66b1f0c2a4d3e5f6a7b8c9d0",
			UserID:          "user-1",
			AppointmentDate: "2024-06-15",
			AppointmentTime: "05:30 PM",
		}
		id, err := repo.CreateAppointment(context.Background(), appointment)

		require.NoError(t, err)
		assert.Len(t, id, 24)
		assert.Equal(t, id, appointment.ID.Hex())
		assert.Equal(t, constvars.AppointmentStatusPending, appointment.Status)
		assert.Equal(t, fixedNow, appointment.CreatedAt)
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		id, err := repo.CreateAppointment(context.Background(), &models.Appointment{UserID: "user-1"})

		assert.Empty(t, id)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}

func TestAppointmentMongoRepository_FindAppointmentByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	id := primitive.NewObjectID()
	createdAt := time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)

	mt.Run("found", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, appointmentDocument(id, createdAt)))

		appointment, err := repo.FindAppointmentByID(context.Background(), id.Hex())

		require.NoError(t, err)
		require.NotNil(t, appointment)
		assert.Equal(t, id, appointment.ID)
		assert.Equal(t, "Ann Perera", appointment.DoctorName)
		assert.Equal(t, "05:30 PM", appointment.AppointmentTime)
	})

	mt.Run("not found returns nil", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		appointment, err := repo.FindAppointmentByID(context.Background(), id.Hex())

		assert.NoError(t, err)
		assert.Nil(t, appointment)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}

		appointment, err := repo.FindAppointmentByID(context.Background(), "not-an-id")

		assert.Nil(t, appointment)
		assert.Error(t, err)
	})

	mt.Run("stored weekday date is a schema mismatch", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		doc := appointmentDocument(id, createdAt)
		doc[6] = bson.E{Key: "appointmentDate", Value: "2024-06-12"}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, doc))

		appointment, err := repo.FindAppointmentByID(context.Background(), id.Hex())

		assert.Nil(t, appointment)
		require.Error(t, err)
		assert.Contains(t, err.Error(), constvars.MongoCollectionAppointments)
	})
}

func TestAppointmentMongoRepository_FindByUserID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns every document in order", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		newer := primitive.NewObjectID()
		older := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			appointmentDocument(newer, time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)),
			appointmentDocument(older, time.Date(2024, 6, 11, 10, 0, 0, 0, time.UTC)),
		))

		appointments, err := repo.FindByUserID(context.Background(), "user-1")

		require.NoError(t, err)
		require.Len(t, appointments, 2)
		assert.Equal(t, newer, appointments[0].ID)
		assert.Equal(t, older, appointments[1].ID)
	})

	mt.Run("empty result is an empty slice", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		appointments, err := repo.FindByUserID(context.Background(), "user-1")

		require.NoError(t, err)
		assert.NotNil(t, appointments)
		assert.Empty(t, appointments)
	})

	mt.Run("command error", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad query",
			Name:    "BadValue",
		}))

		appointments, err := repo.FindByUserID(context.Background(), "user-1")

		assert.Nil(t, appointments)
		assert.Error(t, err)
	})
}
