package services

import (
	"context"
	"fmt"
	"time"

	"github.com/joshua-takyi/cinema/internal/models"
	"go.uber.org/zap"
)

const defaultEventWriteTimeout = 5 * time.Second

// EventRecorder writes reservation audit events. Record never reports
// failure to its caller.
type EventRecorder interface {
	Record(ctx context.Context, reservationID int64, eventType models.EventType, source models.EventSource, note string, createdAt time.Time)
}

type EventLogger struct {
	eventsRepo models.ReservationEventsRepo
	log        *zap.Logger
	timeout    time.Duration
}

func NewEventLogger(eventsRepo models.ReservationEventsRepo, log *zap.Logger) *EventLogger {
	return &EventLogger{
		eventsRepo: eventsRepo,
		log:        log,
		timeout:    defaultEventWriteTimeout,
	}
}

// Record inserts one event. Every failure is logged at warn level and
// dropped: the audit trail is best-effort and must not affect the booking
// that triggered it. The write is detached from the request's cancellation
// but bounded by the logger's own timeout. A zero createdAt means now.
func (el *EventLogger) Record(ctx context.Context, reservationID int64, eventType models.EventType, source models.EventSource, note string, createdAt time.Time) {
	defer func() {
		if r := recover(); r != nil {
			el.log.Warn("reservation event write panicked",
				zap.Int64("reservation_id", reservationID),
				zap.Any("panic", r),
			)
		}
	}()

	if createdAt.IsZero() {
		createdAt = NaiveLocal(time.Now())
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), el.timeout)
	defer cancel()

	event := &models.ReservationEvent{
		ReservationID: reservationID,
		EventType:     eventType,
		Source:        source,
		Note:          note,
		CreatedAt:     createdAt,
	}
	if err := el.eventsRepo.InsertReservationEvent(writeCtx, event); err != nil {
		el.log.Warn("failed to record reservation event",
			zap.Int64("reservation_id", reservationID),
			zap.String("event_type", string(eventType)),
			zap.Error(err),
		)
		return
	}

	el.log.Info("reservation event recorded",
		zap.Int64("reservation_id", reservationID),
		zap.String("event_type", string(eventType)),
		zap.String("source", string(source)),
	)
}

// EnsureIndexes is safe to call repeatedly; a failure is logged, not returned.
func (el *EventLogger) EnsureIndexes(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, el.timeout)
	defer cancel()
	if err := el.eventsRepo.EnsureIndexes(ctx); err != nil {
		el.log.Warn("could not ensure reservation_events indexes", zap.Error(err))
		return
	}
	el.log.Info("reservation_events index verified", zap.String("index", models.ReservationIDIndexName))
}

func (el *EventLogger) ListEvents(ctx context.Context, reservationID int64) ([]models.ReservationEvent, error) {
	if reservationID <= 0 {
		return nil, ErrInvalidID
	}
	events, err := el.eventsRepo.ListReservationEvents(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for reservation %d: %w", reservationID, err)
	}
	return events, nil
}

// NaiveLocal keeps the local wall-clock reading of t and drops its zone,
// labelling the result UTC so the document store persists it unshifted.
func NaiveLocal(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
