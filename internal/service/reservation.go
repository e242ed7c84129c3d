package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/slotkeeper/internal/clock"
	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/niksmo/slotkeeper/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ReservationService is the facade for a single booking attempt:
// validate the slot, place a hold, then confirm or cancel it.
type ReservationService struct {
	resolver    *Resolver
	holds       *HoldManager
	occurrences ports.OccurrenceStore
	bookings    ports.BookingStore
	sink        ports.NotificationSink
	clock       clock.Clock
	defaultTTL  time.Duration
	log         logger.Logger
}

func NewReservationService(
	resolver *Resolver,
	holds *HoldManager,
	occurrences ports.OccurrenceStore,
	bookings ports.BookingStore,
	sink ports.NotificationSink,
	clk clock.Clock,
	defaultTTL time.Duration,
	log logger.Logger,
) *ReservationService {
	return &ReservationService{
		resolver:    resolver,
		holds:       holds,
		occurrences: occurrences,
		bookings:    bookings,
		sink:        sink,
		clock:       clk,
		defaultTTL:  defaultTTL,
		log:         log,
	}
}

// Reserve places a hold with the default TTL after verifying the
// occurrence really is a bookable slot of the product.
func (s *ReservationService) Reserve(ctx context.Context, productID, occurrenceID string, qty int) (*domain.Hold, error) {
	occ, err := s.occurrences.GetByID(ctx, occurrenceID)
	if err != nil {
		return nil, fmt.Errorf("get occurrence: %w", err)
	}
	if occ.ProductID != productID {
		return nil, fmt.Errorf("%w: occurrence does not belong to product", domain.ErrOccurrenceNotFound)
	}
	if err = s.resolver.CheckBookable(ctx, occ); err != nil {
		return nil, err
	}

	return s.holds.PlaceHold(ctx, occurrenceID, qty, s.defaultTTL)
}

// Renew extends the hold's expiry by ttl from now.
func (s *ReservationService) Renew(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	return s.holds.Renew(ctx, token, ttl)
}

// Confirm consumes the hold and persists the booking. When persistence
// fails after the consume, the booked seats are handed back and the
// caller must restart the reservation flow.
func (s *ReservationService) Confirm(ctx context.Context, token string, details domain.BookingDetails) (string, error) {
	if details.CustomerName == "" {
		return "", fmt.Errorf("%w: customer_name is required", domain.ErrValidation)
	}

	hold, err := s.holds.Consume(ctx, token)
	if err != nil {
		return "", err
	}

	booking := &domain.Booking{
		ID:            uuid.New().String(),
		OccurrenceID:  hold.OccurrenceID,
		HoldToken:     hold.Token,
		Quantity:      hold.Quantity,
		CustomerName:  details.CustomerName,
		CustomerEmail: details.CustomerEmail,
		Note:          details.Note,
		CreatedAt:     s.clock.Now(),
	}

	if err = s.bookings.Save(ctx, booking); err != nil {
		s.log.Error("booking persistence failed, compensating",
			logger.String("hold_token", token),
			logger.String("occurrence_id", hold.OccurrenceID),
			logger.String("error", err.Error()),
		)
		if derr := s.occurrences.IncrementBooked(ctx, hold.OccurrenceID, -hold.Quantity); derr != nil {
			s.log.Error("compensation failed, booked count is off",
				logger.String("occurrence_id", hold.OccurrenceID),
				logger.Int("quantity", hold.Quantity),
				logger.String("error", derr.Error()),
			)
		}
		return "", domain.ErrBookingPersistenceFailed
	}

	s.log.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("occurrence_id", booking.OccurrenceID),
		logger.Int("quantity", booking.Quantity),
	)

	go s.sink.EmitLifecycle(context.WithoutCancel(ctx), domain.BookingLifecycleEvent{
		Kind:         domain.LifecycleBookingConfirmed,
		OccurrenceID: booking.OccurrenceID,
		HoldToken:    booking.HoldToken,
		Quantity:     booking.Quantity,
		At:           booking.CreatedAt,
	})

	return booking.ID, nil
}

// Cancel releases the hold. Safe to call any number of times.
func (s *ReservationService) Cancel(ctx context.Context, token string) error {
	return s.holds.Release(ctx, token)
}
