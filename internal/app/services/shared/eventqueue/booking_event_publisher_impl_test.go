package eventqueue

import (
	"context"
	"doccare-service/internal/app/models"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingChannel struct {
	exchange string
	key      string
	messages []amqp091.Publishing
	err      error
}

func (c *recordingChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.exchange = exchange
	c.key = key
	c.messages = append(c.messages, msg)
	return nil
}

func TestBookingEventPublisher_PublishBookingCreated(t *testing.T) {
	event := &models.BookingEvent{
		EventID:         "evt-1",
		EventType:       "booking.created",
		AppointmentID:   "665f1c2e8b3a4d0012345678",
		UserID:          "uid-1",
		DoctorID:        "doc-1",
		AppointmentDate: "2024-06-08",
		AppointmentTime: "04:00 PM",
		OccurredAt:      time.Date(2024, time.June, 5, 10, 0, 0, 0, time.UTC),
	}

	t.Run("Publishes Persistent JSON To Queue", func(t *testing.T) {
		channel := &recordingChannel{}
		publisher := &bookingEventPublisher{Channel: channel, Queue: "booking_events", Log: zap.NewNop()}

		require.NoError(t, publisher.PublishBookingCreated(context.Background(), event))
		require.Len(t, channel.messages, 1)

		msg := channel.messages[0]
		assert.Equal(t, "", channel.exchange)
		assert.Equal(t, "booking_events", channel.key)
		assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
		assert.Equal(t, "evt-1", msg.MessageId)
		assert.Equal(t, "booking.created", msg.Type)

		var decoded models.BookingEvent
		require.NoError(t, json.Unmarshal(msg.Body, &decoded))
		assert.Equal(t, *event, decoded)
	})

	t.Run("Broker Error Is Wrapped", func(t *testing.T) {
		channel := &recordingChannel{err: errors.New("channel closed")}
		publisher := &bookingEventPublisher{Channel: channel, Queue: "booking_events", Log: zap.NewNop()}

		err := publisher.PublishBookingCreated(context.Background(), event)
		assert.ErrorIs(t, err, channel.err)
	})
}
