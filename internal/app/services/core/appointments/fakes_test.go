package appointments

import (
	"context"
	"doccare-service/internal/app/models"
	"errors"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeAppointmentRepository struct {
	mu           sync.Mutex
	appointments map[string]models.Appointment
	createErr    error
	createCalls  int
	findCalls    int
}

func newFakeAppointmentRepository() *fakeAppointmentRepository {
	return &fakeAppointmentRepository{appointments: make(map[string]models.Appointment)}
}

func (f *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return "", f.createErr
	}
	appointment.ID = primitive.NewObjectID()
	appointment.CreatedAt = models.Now()
	f.appointments[appointment.ID.Hex()] = *appointment
	return appointment.ID.Hex(), nil
}

func (f *fakeAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	return &appointment, nil
}

func (f *fakeAppointmentRepository) FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	result := make([]models.Appointment, 0)
	for _, appointment := range f.appointments {
		if appointment.UserID == userID {
			result = append(result, appointment)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeAppointmentRepository) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls + f.findCalls
}

type fakeDoctorRepository struct {
	doctors map[string]models.Doctor
	calls   int
}

func newFakeDoctorRepository(doctors ...models.Doctor) *fakeDoctorRepository {
	repo := &fakeDoctorRepository{doctors: make(map[string]models.Doctor)}
	for _, doctor := range doctors {
		repo.doctors[doctor.ID.Hex()] = doctor
	}
	return repo
}

func (f *fakeDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	f.calls++
	result := make([]models.Doctor, 0, len(f.doctors))
	for _, doctor := range f.doctors {
		result = append(result, doctor)
	}
	return result, nil
}

func (f *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	f.calls++
	doctor, ok := f.doctors[doctorID]
	if !ok {
		return nil, nil
	}
	return &doctor, nil
}

func (f *fakeDoctorRepository) Upsert(ctx context.Context, doctor *models.Doctor) (string, error) {
	f.calls++
	f.doctors[doctor.ID.Hex()] = *doctor
	return doctor.ID.Hex(), nil
}

type fakeNotificationRepository struct {
	mu            sync.Mutex
	notifications []models.NotificationRecord
	// failures is consumed one error per CreateUserNotification call.
	failures    []error
	createCalls int
	// onCreate runs at the start of every CreateUserNotification call.
	onCreate func()
}

func (f *fakeNotificationRepository) CreateUserNotification(ctx context.Context, notification *models.NotificationRecord) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.onCreate != nil {
		f.onCreate()
	}
	if len(f.failures) > 0 {
		err := f.failures[0]
		f.failures = f.failures[1:]
		if err != nil {
			return "", err
		}
	}
	for _, existing := range f.notifications {
		if existing.AppointmentID != "" && existing.AppointmentID == notification.AppointmentID && existing.UserID == notification.UserID {
			return existing.ID.Hex(), nil
		}
	}
	stored := *notification
	stored.ID = primitive.NewObjectID()
	f.notifications = append(f.notifications, stored)
	return stored.ID.Hex(), nil
}

func (f *fakeNotificationRepository) FindGeneral(ctx context.Context) ([]models.NotificationRecord, error) {
	return nil, nil
}

func (f *fakeNotificationRepository) FindByUserID(ctx context.Context, userID string) ([]models.NotificationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]models.NotificationRecord, 0)
	for _, notification := range f.notifications {
		if notification.UserID == userID {
			result = append(result, notification)
		}
	}
	return result, nil
}

func (f *fakeNotificationRepository) FindGeneralByID(ctx context.Context, notificationID string) (*models.NotificationRecord, error) {
	return nil, nil
}

func (f *fakeNotificationRepository) FindUserNotificationByID(ctx context.Context, userID, notificationID string) (*models.NotificationRecord, error) {
	return nil, nil
}

func (f *fakeNotificationRepository) MarkAsRead(ctx context.Context, userID, notificationID string) (bool, error) {
	return false, nil
}

func (f *fakeNotificationRepository) stored() []models.NotificationRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.NotificationRecord(nil), f.notifications...)
}

type stubSettingsUsecase struct {
	template models.NotificationTemplate
}

func (s stubSettingsUsecase) GetNotificationTemplate(ctx context.Context) models.NotificationTemplate {
	return s.template
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.BookingEvent
	err    error
}

func (p *recordingPublisher) PublishBookingCreated(ctx context.Context, event *models.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *event)
	return p.err
}

// fakeLocker keeps lock ownership in memory and ignores expiry.
type fakeLocker struct {
	mu        sync.Mutex
	held      map[string]string
	tryErr    error
	unlockErr error
	counter   int
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]string)}
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.tryErr != nil {
		return false, "", l.tryErr
	}
	if _, ok := l.held[key]; ok {
		return false, "", nil
	}
	l.counter++
	value := primitive.NewObjectID().Hex()
	l.held[key] = value
	return true, value, nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.unlockErr != nil {
		return l.unlockErr
	}
	if l.held[key] != lockValue {
		return errors.New("lock not owned")
	}
	delete(l.held, key)
	return nil
}

func (l *fakeLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] != lockValue {
		return errors.New("lock not owned")
	}
	return nil
}

func (l *fakeLocker) isHeld(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.held[key]
	return ok
}
