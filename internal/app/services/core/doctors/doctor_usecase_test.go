package doctors

import (
	"context"
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/exceptions"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockDoctorRepository struct {
	mock.Mock
}

func (m *mockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *mockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *mockDoctorRepository) Upsert(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadFile(ctx context.Context, file io.Reader, size int64, contentType, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, size, contentType, bucketName, objectName)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

func newTestDoctorUsecase(repo *mockDoctorRepository, storage *mockStorage) *doctorUsecase {
	return &doctorUsecase{
		DoctorRepository: repo,
		Storage:          storage,
		InternalConfig: &config.InternalConfig{
			Minio: config.AppMinio{BucketName: "doctor-portraits", PresignedURLExpiry: time.Hour},
		},
		Log: zap.NewNop(),
	}
}

func TestDoctorUsecase_FindAll(t *testing.T) {
	repo := &mockDoctorRepository{}
	storage := &mockStorage{}
	uc := newTestDoctorUsecase(repo, storage)

	repo.On("FindAll", mock.Anything).Return([]models.Doctor{
		{ID: primitive.NewObjectID(), Name: "Ann Perera", Image: "portraits/ann.jpg"},
		{ID: primitive.NewObjectID(), Name: "Ben Silva", Image: "https://cdn.example.com/ben.jpg"},
		{ID: primitive.NewObjectID(), Name: "Chamari Fernando", Image: "portraits/broken.jpg"},
		{ID: primitive.NewObjectID(), Name: "Dilan Jayasuriya"},
	}, nil)
	storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "doctor-portraits", "portraits/ann.jpg", time.Hour).
		Return("https://minio.local/doctor-portraits/portraits/ann.jpg?X-Amz-Signature=abc", nil)
	storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "doctor-portraits", "portraits/broken.jpg", time.Hour).
		Return("", errors.New("access denied"))

	doctors, err := uc.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, doctors, 4)
	assert.Contains(t, doctors[0].ImageURL, "X-Amz-Signature")
	assert.Equal(t, "https://cdn.example.com/ben.jpg", doctors[1].ImageURL)
	assert.Empty(t, doctors[2].ImageURL)
	assert.Empty(t, doctors[3].ImageURL)
	storage.AssertNumberOfCalls(t, "GetObjectUrlWithExpiryTime", 2)
}

func TestDoctorUsecase_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := &mockDoctorRepository{}
		uc := newTestDoctorUsecase(repo, &mockStorage{})
		id := primitive.NewObjectID()
		repo.On("FindByID", mock.Anything, id.Hex()).Return(&models.Doctor{ID: id, Name: "Ann Perera", Rating: 4.9}, nil)

		doctor, err := uc.FindByID(context.Background(), id.Hex())

		require.NoError(t, err)
		assert.Equal(t, id.Hex(), doctor.ID)
		assert.Equal(t, 4.9, doctor.Rating)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockDoctorRepository{}
		uc := newTestDoctorUsecase(repo, &mockStorage{})
		id := primitive.NewObjectID().Hex()
		repo.On("FindByID", mock.Anything, id).Return(nil, nil)

		doctor, err := uc.FindByID(context.Background(), id)

		assert.Nil(t, doctor)
		assert.True(t, exceptions.IsKind(err, exceptions.KindDoctorNotFound))
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		repo := &mockDoctorRepository{}
		uc := newTestDoctorUsecase(repo, &mockStorage{})

		doctor, err := uc.FindByID(context.Background(), "ann")

		assert.Nil(t, doctor)
		assert.True(t, exceptions.IsKind(err, exceptions.KindDoctorNotFound))
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("store error is passed through", func(t *testing.T) {
		repo := &mockDoctorRepository{}
		uc := newTestDoctorUsecase(repo, &mockStorage{})
		id := primitive.NewObjectID().Hex()
		repo.On("FindByID", mock.Anything, id).Return(nil, errors.New("timeout"))

		doctor, err := uc.FindByID(context.Background(), id)

		assert.Nil(t, doctor)
		assert.EqualError(t, err, "timeout")
	})
}
