package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"academic-service/internal/config"
	"academic-service/internal/events"
	"academic-service/internal/events/eventstest"
	"academic-service/internal/logger"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_Key(t *testing.T) {
	assert.Equal(t, "course-2", events.New(events.EnrollmentCreated, 1, 2).Key())
	assert.Equal(t, "student-1", events.New(events.StudentCreated, 1, 0).Key())
	assert.Equal(t, "course.created", events.Event{Type: events.CourseCreated}.Key())
}

func TestNew_AssignsUniqueIDs(t *testing.T) {
	first := events.New(events.StudentCreated, 1, 0)
	second := events.New(events.StudentCreated, 1, 0)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestKafkaProducer_Publish(t *testing.T) {
	cfg := events.NewKafkaConfig()
	mockProducer := mocks.NewSyncProducer(t, cfg)

	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got events.Event
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		assert.Equal(t, events.EnrollmentCreated, got.Type)
		assert.Equal(t, 1, got.StudentID)
		assert.Equal(t, 2, got.CourseID)
		return nil
	})

	producer := events.NewKafkaProducerWith(mockProducer, "academic-events", logger.Discard())
	err := producer.Publish(context.Background(), events.New(events.EnrollmentCreated, 1, 2))
	require.NoError(t, err)
	require.NoError(t, producer.Close())
}

func TestKafkaProducer_PublishFailure(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, events.NewKafkaConfig())
	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	producer := events.NewKafkaProducerWith(mockProducer, "academic-events", logger.Discard())
	err := producer.Publish(context.Background(), events.New(events.StudentDeleted, 1, 0))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, producer.Close())
}

func TestNewPublisher(t *testing.T) {
	t.Run("DisabledByDefault", func(t *testing.T) {
		pub := events.NewPublisher(config.EventsConfig{}, logger.Discard())
		assert.IsType(t, events.Nop{}, pub)
		assert.NoError(t, pub.Publish(context.Background(), events.New(events.CourseCreated, 0, 1)))
		assert.NoError(t, pub.Close())
	})

	t.Run("UnreachableNATSFallsBackToNop", func(t *testing.T) {
		pub := events.NewPublisher(config.EventsConfig{
			Driver: "nats",
			NATS:   config.NATSConfig{URL: "nats://127.0.0.1:1", Subject: "test"},
		}, logger.Discard())
		assert.IsType(t, events.Nop{}, pub)
	})
}

func TestEmit(t *testing.T) {
	t.Run("Publishes", func(t *testing.T) {
		rec := &eventstest.Recorder{}
		events.Emit(context.Background(), rec, logger.Discard(), events.New(events.StudentCreated, 4, 0))

		require.Len(t, rec.Events(), 1)
		assert.Equal(t, 4, rec.Events()[0].StudentID)
	})

	t.Run("SwallowsFailure", func(t *testing.T) {
		rec := &eventstest.Recorder{Err: errors.New("broker down")}
		assert.NotPanics(t, func() {
			events.Emit(context.Background(), rec, logger.Discard(), events.New(events.StudentCreated, 4, 0))
		})
		assert.Empty(t, rec.Events())
	})

	t.Run("NilPublisher", func(t *testing.T) {
		assert.NotPanics(t, func() {
			events.Emit(context.Background(), nil, logger.Discard(), events.New(events.CourseDeleted, 0, 1))
		})
	})
}
