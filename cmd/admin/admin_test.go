package main

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/redis/redistest"
	"doccare-service/internal/pkg/constvars"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDoctorRepository struct {
	upserted []models.Doctor
	byID     map[string]*models.Doctor
	err      error
}

func (r *recordingDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return r.upserted, nil
}

func (r *recordingDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return r.byID[doctorID], nil
}

func (r *recordingDoctorRepository) Upsert(ctx context.Context, doctor *models.Doctor) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.upserted = append(r.upserted, *doctor)
	return "id", nil
}

func TestSeedDoctors(t *testing.T) {
	ctx := context.Background()
	logger, hook := logrustest.NewNullLogger()

	path := filepath.Join(t.TempDir(), "doctors.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "Sarah Johnson", "specialty": "Cardiology", "rating": 4.8},
		{"name": "", "specialty": "Unknown"},
		{"name": "Michael Chen", "specialty": "Dermatology", "image": "portraits/chen.jpg"}
	]`), 0o600))

	t.Run("Valid Entries Are Upserted", func(t *testing.T) {
		repository := &recordingDoctorRepository{}

		count, err := seedDoctors(ctx, repository, path, logger)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, "portraits/chen.jpg", repository.upserted[1].Image)
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})

	t.Run("Repository Failure Stops The Run", func(t *testing.T) {
		repository := &recordingDoctorRepository{err: errors.New("write conflict")}

		count, err := seedDoctors(ctx, repository, path, logger)

		assert.Error(t, err)
		assert.Zero(t, count)
	})

	t.Run("Malformed File", func(t *testing.T) {
		broken := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(broken, []byte(`{"name":`), 0o600))

		_, err := seedDoctors(ctx, &recordingDoctorRepository{}, broken, logger)
		assert.Error(t, err)
	})
}

func TestRequeueDeadLetters(t *testing.T) {
	ctx := context.Background()
	logger, _ := logrustest.NewNullLogger()

	exhausted := func(appointmentID string) string {
		payload, _ := json.Marshal(models.PendingNotification{
			AppointmentID: appointmentID,
			Notification:  models.NotificationRecord{UserID: "uid-1", AppointmentID: appointmentID, Title: "t", Message: "m"},
			Attempts:      5,
			LastError:     "mongo down",
		})
		return string(payload)
	}

	t.Run("Moves Entries With A Fresh Budget", func(t *testing.T) {
		fake := redistest.NewFakeRepository()
		require.NoError(t, fake.PushToList(ctx, constvars.RedisKeyNotificationDeadLetter, exhausted("a-1"), "not json", exhausted("a-2")))

		moved, err := requeueDeadLetters(ctx, fake, 10, logger)

		require.NoError(t, err)
		assert.Equal(t, 2, moved)
		assert.Equal(t, []string{"not json"}, fake.List(constvars.RedisKeyNotificationDeadLetter))

		retry := fake.List(constvars.RedisKeyNotificationRetryQueue)
		require.Len(t, retry, 2)
		var first models.PendingNotification
		require.NoError(t, json.Unmarshal([]byte(retry[0]), &first))
		assert.Equal(t, "a-1", first.AppointmentID)
		assert.Zero(t, first.Attempts)
		assert.Empty(t, first.LastError)
	})

	t.Run("Respects Limit", func(t *testing.T) {
		fake := redistest.NewFakeRepository()
		require.NoError(t, fake.PushToList(ctx, constvars.RedisKeyNotificationDeadLetter, exhausted("a-1"), exhausted("a-2")))

		moved, err := requeueDeadLetters(ctx, fake, 1, logger)

		require.NoError(t, err)
		assert.Equal(t, 1, moved)
		assert.Len(t, fake.List(constvars.RedisKeyNotificationDeadLetter), 1)
	})

	t.Run("Redis Failure", func(t *testing.T) {
		fake := redistest.NewFakeRepository()
		fake.FailOn("ListLength", errors.New("connection refused"))

		_, err := requeueDeadLetters(ctx, fake, 10, logger)
		assert.Error(t, err)
	})
}

type recordingSettingsRepository struct {
	stored *models.Settings
	err    error
}

func (r *recordingSettingsRepository) FindCustomContent(ctx context.Context) (*models.Settings, error) {
	return r.stored, nil
}

func (r *recordingSettingsRepository) UpsertCustomContent(ctx context.Context, settings *models.Settings) error {
	if r.err != nil {
		return r.err
	}
	r.stored = settings
	return nil
}

func TestStoreSettings(t *testing.T) {
	ctx := context.Background()
	content := &models.Settings{Header: "Welcome to DocCare", Footer: "Reply STOP to opt out"}

	t.Run("Clears Cached Copy", func(t *testing.T) {
		logger, _ := logrustest.NewNullLogger()
		repository := &recordingSettingsRepository{}
		fake := redistest.NewFakeRepository()
		require.NoError(t, fake.Set(ctx, constvars.RedisKeySettingsCustomContent, models.Settings{Header: "old"}, time.Hour))

		err := storeSettings(ctx, repository, fake, content, logger)

		require.NoError(t, err)
		assert.Equal(t, content, repository.stored)
		_, cached := fake.Raw(constvars.RedisKeySettingsCustomContent)
		assert.False(t, cached)
	})

	t.Run("Cache Failure Still Stores", func(t *testing.T) {
		logger, hook := logrustest.NewNullLogger()
		repository := &recordingSettingsRepository{}
		fake := redistest.NewFakeRepository()
		fake.FailOn("Delete", errors.New("connection refused"))

		err := storeSettings(ctx, repository, fake, content, logger)

		require.NoError(t, err)
		assert.Equal(t, content, repository.stored)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})

	t.Run("Mongo Failure Leaves Cache", func(t *testing.T) {
		logger, _ := logrustest.NewNullLogger()
		repository := &recordingSettingsRepository{err: errors.New("mongo down")}
		fake := redistest.NewFakeRepository()
		require.NoError(t, fake.Set(ctx, constvars.RedisKeySettingsCustomContent, models.Settings{Header: "old"}, time.Hour))

		err := storeSettings(ctx, repository, fake, content, logger)

		assert.Error(t, err)
		_, cached := fake.Raw(constvars.RedisKeySettingsCustomContent)
		assert.True(t, cached)
		assert.Zero(t, fake.CallCount("Delete"))
	})
}

type memoryStorage struct {
	objects map[string]string
	err     error
}

func (m *memoryStorage) UploadFile(ctx context.Context, file io.Reader, size int64, contentType, bucketName, objectName string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	body, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	m.objects[bucketName+"/"+objectName] = contentType + ":" + string(body)
	return objectName, nil
}

func (m *memoryStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	return "", nil
}

func TestAttachPortrait(t *testing.T) {
	ctx := context.Background()
	image := filepath.Join(t.TempDir(), "chen.png")
	require.NoError(t, os.WriteFile(image, []byte("png-bytes"), 0o600))

	t.Run("Uploads And Updates Doctor", func(t *testing.T) {
		repository := &recordingDoctorRepository{byID: map[string]*models.Doctor{
			"doc-1": {Name: "Michael Chen", Specialty: "Dermatology"},
		}}
		store := &memoryStorage{objects: map[string]string{}}

		key, err := attachPortrait(ctx, repository, store, "doctor-portraits", "doc-1", image)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "doctors/doc-1_"))
		assert.True(t, strings.HasSuffix(key, ".png"))
		assert.Equal(t, "image/png:png-bytes", store.objects["doctor-portraits/"+key])
		require.Len(t, repository.upserted, 1)
		assert.Equal(t, key, repository.upserted[0].Image)
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		store := &memoryStorage{objects: map[string]string{}}

		_, err := attachPortrait(ctx, &recordingDoctorRepository{}, store, "doctor-portraits", "doc-9", image)

		assert.Error(t, err)
		assert.Empty(t, store.objects)
	})

	t.Run("Upload Failure Leaves Doctor Untouched", func(t *testing.T) {
		repository := &recordingDoctorRepository{byID: map[string]*models.Doctor{"doc-1": {Name: "Michael Chen"}}}

		_, err := attachPortrait(ctx, repository, &memoryStorage{err: errors.New("bucket gone")}, "doctor-portraits", "doc-1", image)

		assert.Error(t, err)
		assert.Empty(t, repository.upserted)
	})
}
