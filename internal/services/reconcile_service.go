package services

import (
	"context"
	"fmt"
	"time"

	"github.com/joshua-takyi/cinema/internal/models"
	"go.uber.org/zap"
)

// Reservations younger than this may still have their WEB event write in
// flight, so they are left for a later run.
const reconcileGrace = 2 * defaultEventWriteTimeout

type ReconcileResult struct {
	Scanned    int
	Backfilled int
	Failed     int
}

// Reconciler backfills CREATED events for reservations whose audit write was
// lost. It only reads from the relational store.
type Reconciler struct {
	reservationsRepo models.ReservationsRepo
	eventsRepo       models.ReservationEventsRepo
	lookback         time.Duration
	grace            time.Duration
	writeTimeout     time.Duration
	log              *zap.Logger
	now              func() time.Time
}

func NewReconciler(reservationsRepo models.ReservationsRepo, eventsRepo models.ReservationEventsRepo, lookback time.Duration, log *zap.Logger) *Reconciler {
	return &Reconciler{
		reservationsRepo: reservationsRepo,
		eventsRepo:       eventsRepo,
		lookback:         lookback,
		grace:            reconcileGrace,
		writeTimeout:     defaultEventWriteTimeout,
		log:              log,
		now:              time.Now,
	}
}

// RunOnce scans reservations created in [now-lookback, now-grace) and writes a
// RECONCILER CREATED event for each one the event store has no record of.
func (r *Reconciler) RunOnce(ctx context.Context) (ReconcileResult, error) {
	var result ReconcileResult

	now := r.now()
	cutoff := now.Add(-r.grace)
	recent, err := r.reservationsRepo.ListReservationsCreatedSince(ctx, now.Add(-r.lookback))
	if err != nil {
		return result, fmt.Errorf("failed to scan reservations: %w", err)
	}

	reservations := make([]models.Reservation, 0, len(recent))
	for _, res := range recent {
		if res.CreatedAt.Before(cutoff) {
			reservations = append(reservations, res)
		}
	}
	result.Scanned = len(reservations)
	if len(reservations) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(reservations))
	for _, res := range reservations {
		ids = append(ids, res.ID)
	}
	logged, err := r.eventsRepo.ReservationIDsWithEvent(ctx, ids, models.EventCreated)
	if err != nil {
		return result, fmt.Errorf("failed to read audit events: %w", err)
	}

	for _, res := range reservations {
		if logged[res.ID] {
			continue
		}
		if err := r.backfill(ctx, res); err != nil {
			result.Failed++
			r.log.Warn("failed to backfill reservation event",
				zap.Int64("reservation_id", res.ID),
				zap.Error(err),
			)
			continue
		}
		result.Backfilled++
	}

	if result.Backfilled > 0 || result.Failed > 0 {
		r.log.Info("reservation events backfilled",
			zap.Int("scanned", result.Scanned),
			zap.Int("backfilled", result.Backfilled),
			zap.Int("failed", result.Failed),
		)
	}
	return result, nil
}

func (r *Reconciler) backfill(ctx context.Context, res models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	return r.eventsRepo.InsertReservationEvent(ctx, &models.ReservationEvent{
		ReservationID: res.ID,
		EventType:     models.EventCreated,
		Source:        models.SourceReconciler,
		Note:          fmt.Sprintf("Reservation for %s", res.CustomerName),
		CreatedAt:     NaiveLocal(res.CreatedAt),
	})
}
